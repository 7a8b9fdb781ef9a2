package http

import (
	"net/http"

	"github.com/klwxsrx/adoption-portal/internal/backend"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

func NewDashboardHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodGet, AdminHomePath, func(w pkghttp.ResponseWriter, r *http.Request) error {
		summary, err := api.DashboardSummary(r.Context())
		if err != nil {
			return err
		}

		w.SetJSONBody(summary)
		return nil
	})
}
