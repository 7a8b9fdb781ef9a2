package backend

import (
	"context"
	"net/http"
	"strconv"

	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

var (
	routeCurrentUser     = pkghttp.Route{Method: http.MethodGet, URL: "/user-management/current-user"}
	routeRegisterAdopter = pkghttp.Route{Method: http.MethodPost, URL: "/user-management/adopters"}
	routeUpdateAdopter   = pkghttp.Route{Method: http.MethodPut, URL: "/user-management/adopters/{id}"}
	routeListAdopters    = pkghttp.Route{Method: http.MethodGet, URL: "/user-management/adopters"}
	routeDeleteAdopter   = pkghttp.Route{Method: http.MethodDelete, URL: "/user-management/adopters/{id}"}
	routeCreateAdmin     = pkghttp.Route{Method: http.MethodPost, URL: "/user-management/user"}
	routeUpdateAdmin     = pkghttp.Route{Method: http.MethodPut, URL: "/user-management/users/{id}"}
	routeListAdmins      = pkghttp.Route{Method: http.MethodGet, URL: "/user-management/users"}
	routeDeleteAdmin     = pkghttp.Route{Method: http.MethodDelete, URL: "/user-management/users/{id}"}
)

func (a api) CurrentUser(ctx context.Context) (User, error) {
	return sendAndParse[User](a.client.NewRequest(ctx, routeCurrentUser))
}

func (a api) RegisterAdopter(ctx context.Context, input UserInput) error {
	_, err := send(a.client.NewRequest(ctx, routeRegisterAdopter).SetJSONBody(input))
	return err
}

func (a api) UpdateAdopter(ctx context.Context, id int, input UserInput) error {
	_, err := send(a.client.NewRequest(ctx, routeUpdateAdopter).
		SetPathParam("id", strconv.Itoa(id)).
		SetJSONBody(input))
	return err
}

func (a api) ListAdopters(ctx context.Context, filter UserFilter) (AdopterPage, error) {
	page, limit := pageParams(filter.Page, filter.Limit)
	return sendAndParse[AdopterPage](a.client.NewRequest(ctx, routeListAdopters).
		SetQueryParam("page", page).
		SetQueryParam("limit", limit).
		SetQueryParam("search", filter.Search))
}

func (a api) DeleteAdopter(ctx context.Context, id int) error {
	_, err := send(a.client.NewRequest(ctx, routeDeleteAdopter).
		SetPathParam("id", strconv.Itoa(id)))
	return err
}

// CreateAdmin returns the ID of the new administrator. This endpoint answers without the
// usual message/data envelope.
func (a api) CreateAdmin(ctx context.Context, input UserInput) (int, error) {
	resp, err := send(a.client.NewRequest(ctx, routeCreateAdmin).SetJSONBody(input))
	if err != nil {
		return 0, err
	}

	result, err := pkghttp.ParseResponse(resp, pkghttp.JSONResponseBody[struct {
		ID int `json:"id"`
	}]())
	return result.ID, err
}

func (a api) UpdateAdmin(ctx context.Context, id int, input UserInput) error {
	_, err := send(a.client.NewRequest(ctx, routeUpdateAdmin).
		SetPathParam("id", strconv.Itoa(id)).
		SetJSONBody(input))
	return err
}

func (a api) ListAdmins(ctx context.Context, filter UserFilter) (UserPage, error) {
	page, limit := pageParams(filter.Page, filter.Limit)
	return sendAndParse[UserPage](a.client.NewRequest(ctx, routeListAdmins).
		SetQueryParam("page", page).
		SetQueryParam("limit", limit).
		SetQueryParam("search", filter.Search))
}

func (a api) DeleteAdmin(ctx context.Context, id int) error {
	_, err := send(a.client.NewRequest(ctx, routeDeleteAdmin).
		SetPathParam("id", strconv.Itoa(id)))
	return err
}
