package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	"github.com/klwxsrx/adoption-portal/internal/backend"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

const (
	AdopterHomePath = "/"
	AdminHomePath   = "/admin/dashboard"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ErrorMapping translates backend and session errors into portal response codes.
func ErrorMapping() map[int][]error {
	return map[int][]error{
		http.StatusBadRequest:   {ErrInvalidInput, backend.ErrBadRequest},
		http.StatusUnauthorized: {ErrInvalidCredentials, auth.ErrUnauthorized},
		http.StatusForbidden:    {backend.ErrForbidden},
		http.StatusNotFound:     {backend.ErrNotFound},
	}
}

// newHandler prepares every request to record navigation requested by the backend client.
// A recorded target replaces whatever the handler answered with a redirect.
func newHandler(method, path string, fn pkghttp.HandlerFunc) pkghttp.Handler {
	return pkghttp.NewHandler(method, path, func(w pkghttp.ResponseWriter, r *http.Request) error {
		r = r.WithContext(auth.WithNavigation(r.Context()))

		err := fn(w, r)
		if target, ok := auth.NavigationTarget(r.Context()); ok {
			w.Redirect(target)
			return nil
		}

		return err
	})
}

func idParameter(r *http.Request, name string, lastErr error) (int, error) {
	id, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int](name), lastErr)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidInput, name)
	}

	return id, nil
}

func pageParameters(r *http.Request) (page, limit int, err error) {
	pagePtr, err := pkghttp.ParseRequest(r, pkghttp.QueryParameterOptional[int]("page"), nil)
	limitPtr, err := pkghttp.ParseRequest(r, pkghttp.QueryParameterOptional[int]("limit"), err)
	if err != nil {
		return 0, 0, err
	}

	if pagePtr != nil {
		page = *pagePtr
	}
	if limitPtr != nil {
		limit = *limitPtr
	}
	return page, limit, nil
}
