package backend

import (
	"context"
	"net/http"

	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

var routeDashboardSummary = pkghttp.Route{Method: http.MethodGet, URL: "/dashboard-management/dashboard/summary"}

func (a api) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	return sendAndParse[DashboardSummary](a.client.NewRequest(ctx, routeDashboardSummary))
}
