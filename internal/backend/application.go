package backend

import (
	"context"
	"net/http"
	"strconv"

	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

var (
	routeSubmitApplication        = pkghttp.Route{Method: http.MethodPost, URL: "/application-management/applications"}
	routeListMyApplications       = pkghttp.Route{Method: http.MethodGet, URL: "/application-management/applications/current-adopter"}
	routeGetApplication           = pkghttp.Route{Method: http.MethodGet, URL: "/application-management/applications/{id}"}
	routeUpdateAdopterApplication = pkghttp.Route{Method: http.MethodPut, URL: "/application-management/applications/{id}/adopter"}
	routeListApplications         = pkghttp.Route{Method: http.MethodGet, URL: "/application-management/applications"}
	routeUpdateApplicationStatus  = pkghttp.Route{Method: http.MethodPatch, URL: "/application-management/applications/{id}/status"}
)

func (a api) SubmitApplication(ctx context.Context, input ApplicationInput) (Application, error) {
	return sendAndParse[Application](a.client.NewRequest(ctx, routeSubmitApplication).
		SetJSONBody(input))
}

func (a api) ListMyApplications(ctx context.Context) ([]Application, error) {
	result, err := sendAndParse[struct {
		Applications []Application `json:"applications"`
	}](a.client.NewRequest(ctx, routeListMyApplications))
	return result.Applications, err
}

func (a api) GetApplication(ctx context.Context, id int) (Application, error) {
	return sendAndParse[Application](a.client.NewRequest(ctx, routeGetApplication).
		SetPathParam("id", strconv.Itoa(id)))
}

func (a api) UpdateApplicationByAdopter(ctx context.Context, id int, update ApplicationUpdate) error {
	_, err := send(a.client.NewRequest(ctx, routeUpdateAdopterApplication).
		SetPathParam("id", strconv.Itoa(id)).
		SetJSONBody(update))
	return err
}

func (a api) ListApplications(ctx context.Context, filter ApplicationFilter) (ApplicationPage, error) {
	page, limit := pageParams(filter.Page, filter.Limit)
	return sendAndParse[ApplicationPage](a.client.NewRequest(ctx, routeListApplications).
		SetQueryParam("page", page).
		SetQueryParam("limit", limit).
		SetQueryParam("application_status", string(filter.Status)))
}

func (a api) UpdateApplicationStatus(ctx context.Context, id int, status ApplicationStatus) error {
	_, err := send(a.client.NewRequest(ctx, routeUpdateApplicationStatus).
		SetPathParam("id", strconv.Itoa(id)).
		SetJSONBody(struct {
			Status ApplicationStatus `json:"application_status"`
		}{
			Status: status,
		}))
	return err
}
