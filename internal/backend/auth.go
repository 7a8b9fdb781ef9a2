package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

var (
	routeLoginAdopter = pkghttp.Route{Method: http.MethodPost, URL: "/auth/login/adopter"}
	routeLoginAdmin   = pkghttp.Route{Method: http.MethodPost, URL: "/auth/login/admin"}
)

type loginResult struct {
	AccessToken auth.Token `json:"access_token"`
}

func (a api) LoginAdopter(ctx context.Context, credentials Credentials) (auth.Token, error) {
	return a.login(ctx, routeLoginAdopter, credentials)
}

func (a api) LoginAdmin(ctx context.Context, credentials Credentials) (auth.Token, error) {
	return a.login(ctx, routeLoginAdmin, credentials)
}

func (a api) login(ctx context.Context, route pkghttp.Route, credentials Credentials) (auth.Token, error) {
	result, err := sendAndParse[loginResult](a.client.NewRequest(ctx, route).SetJSONBody(credentials))
	if err != nil {
		return "", err
	}
	if result.AccessToken == "" {
		return "", errors.New("login response has no access token")
	}

	return result.AccessToken, nil
}
