package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	"github.com/klwxsrx/adoption-portal/internal/backend"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

type loginFunc func(context.Context, backend.Credentials) (auth.Token, error)

// NewLoginHandler exchanges credentials for a token of the session's role and redirects to
// the role's home page.
func NewLoginHandler(api backend.API, session *auth.Session) pkghttp.Handler {
	login, home := loginFunc(api.LoginAdopter), AdopterHomePath
	if session.Role() == auth.RoleAdmin {
		login, home = api.LoginAdmin, AdminHomePath
	}

	return newHandler(http.MethodPost, session.Role().LoginPath(), func(w pkghttp.ResponseWriter, r *http.Request) error {
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[backend.Credentials](), nil)
		if err != nil {
			return err
		}

		in.Email = strings.TrimSpace(in.Email)
		if in.Email == "" || in.Password == "" {
			return fmt.Errorf("%w: email and password are required", ErrInvalidInput)
		}

		token, err := login(r.Context(), in)
		if errors.Is(err, backend.ErrBadRequest) || errors.Is(err, backend.ErrForbidden) {
			return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		if err != nil {
			return err
		}

		if err = session.Login(r.Context(), token); err != nil {
			return fmt.Errorf("store session: %w", err)
		}

		w.Redirect(home)
		return nil
	})
}

// NewLoginPageHandler describes the login form and whether the role is already signed in.
func NewLoginPageHandler(session *auth.Session) pkghttp.Handler {
	return newHandler(http.MethodGet, session.Role().LoginPath(), func(w pkghttp.ResponseWriter, r *http.Request) error {
		_, authenticated, err := session.Current(r.Context())
		if err != nil {
			return fmt.Errorf("read session: %w", err)
		}

		w.SetJSONBody(loginPageOut{
			Role:          session.Role().String(),
			Authenticated: authenticated,
		})
		return nil
	})
}

// NewLogoutHandler drops the session's token and redirects to the role's login page.
func NewLogoutHandler(session *auth.Session) pkghttp.Handler {
	path := "/logout"
	if session.Role() == auth.RoleAdmin {
		path = "/admin/logout"
	}

	return newHandler(http.MethodPost, path, func(w pkghttp.ResponseWriter, r *http.Request) error {
		if err := session.Logout(r.Context()); err != nil {
			return fmt.Errorf("logout: %w", err)
		}

		w.Redirect(session.Role().LoginPath())
		return nil
	})
}

func NewRegisterHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPost, "/register", func(w pkghttp.ResponseWriter, r *http.Request) error {
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[backend.UserInput](), nil)
		if err != nil {
			return err
		}

		in.Name = strings.TrimSpace(in.Name)
		in.Email = strings.TrimSpace(in.Email)
		if in.Name == "" || in.Email == "" || in.Password == "" {
			return fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
		}

		if err = api.RegisterAdopter(r.Context(), in); err != nil {
			return err
		}

		w.Redirect(auth.AdopterLoginPath)
		return nil
	})
}

// NewCurrentUserHandler answers with the user behind the active credential, administrator
// first.
func NewCurrentUserHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodGet, "/me", func(w pkghttp.ResponseWriter, r *http.Request) error {
		user, err := api.CurrentUser(r.Context())
		if err != nil {
			return err
		}

		w.SetJSONBody(user)
		return nil
	})
}

type loginPageOut struct {
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
}
