package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/klwxsrx/adoption-portal/internal/backend"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

func NewGetProfileHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodGet, "/profile", func(w pkghttp.ResponseWriter, r *http.Request) error {
		user, err := api.CurrentUser(r.Context())
		if err != nil {
			return err
		}

		w.SetJSONBody(user)
		return nil
	})
}

func NewUpdateProfileHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPut, "/profile", func(w pkghttp.ResponseWriter, r *http.Request) error {
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[backend.UserInput](), nil)
		if err != nil {
			return err
		}

		user, err := api.CurrentUser(r.Context())
		if err != nil {
			return err
		}

		if err = api.UpdateAdopter(r.Context(), user.ID, in); err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

func NewListAdoptersHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodGet, "/admin/adopters", func(w pkghttp.ResponseWriter, r *http.Request) error {
		filter, err := parseUserFilter(r)
		if err != nil {
			return err
		}

		result, err := api.ListAdopters(r.Context(), filter)
		if err != nil {
			return err
		}

		w.SetJSONBody(result)
		return nil
	})
}

func NewDeleteAdopterHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodDelete, "/admin/adopters/{adopterID}", func(w pkghttp.ResponseWriter, r *http.Request) error {
		adopterID, err := idParameter(r, "adopterID", nil)
		if err != nil {
			return err
		}

		if err = api.DeleteAdopter(r.Context(), adopterID); err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

func NewListAdminsHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodGet, "/admin/users", func(w pkghttp.ResponseWriter, r *http.Request) error {
		filter, err := parseUserFilter(r)
		if err != nil {
			return err
		}

		result, err := api.ListAdmins(r.Context(), filter)
		if err != nil {
			return err
		}

		w.SetJSONBody(result)
		return nil
	})
}

func NewCreateAdminHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPost, "/admin/users", func(w pkghttp.ResponseWriter, r *http.Request) error {
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[backend.UserInput](), nil)
		if err != nil {
			return err
		}

		in.Name = strings.TrimSpace(in.Name)
		in.Email = strings.TrimSpace(in.Email)
		if in.Name == "" || in.Email == "" || in.Password == "" {
			return fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
		}

		id, err := api.CreateAdmin(r.Context(), in)
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusCreated).SetJSONBody(createAdminOut{ID: id})
		return nil
	})
}

func NewUpdateAdminHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPut, "/admin/users/{userID}", func(w pkghttp.ResponseWriter, r *http.Request) error {
		userID, err := idParameter(r, "userID", nil)
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[backend.UserInput](), err)
		if err != nil {
			return err
		}

		if err = api.UpdateAdmin(r.Context(), userID, in); err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

func NewDeleteAdminHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodDelete, "/admin/users/{userID}", func(w pkghttp.ResponseWriter, r *http.Request) error {
		userID, err := idParameter(r, "userID", nil)
		if err != nil {
			return err
		}

		if err = api.DeleteAdmin(r.Context(), userID); err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

func parseUserFilter(r *http.Request) (backend.UserFilter, error) {
	page, limit, err := pageParameters(r)
	search, err := pkghttp.ParseRequest(r, pkghttp.QueryParameterOptional[string]("search"), err)
	if err != nil {
		return backend.UserFilter{}, err
	}

	filter := backend.UserFilter{Page: page, Limit: limit}
	if search != nil {
		filter.Search = *search
	}
	return filter, nil
}

type createAdminOut struct {
	ID int `json:"id"`
}
