package http

import (
	"fmt"
	"net/http"

	"github.com/klwxsrx/adoption-portal/internal/backend"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

func NewSubmitApplicationHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPost, "/adopt/{animalID}", func(w pkghttp.ResponseWriter, r *http.Request) error {
		animalID, err := idParameter(r, "animalID", nil)
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[submitApplicationIn](), err)
		if err != nil {
			return err
		}

		application, err := api.SubmitApplication(r.Context(), backend.ApplicationInput{
			AnimalID: animalID,
			Reason:   in.Reason,
		})
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusCreated).SetJSONBody(application)
		return nil
	})
}

func NewListMyApplicationsHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodGet, "/applications", func(w pkghttp.ResponseWriter, r *http.Request) error {
		applications, err := api.ListMyApplications(r.Context())
		if err != nil {
			return err
		}

		w.SetJSONBody(applicationsOut{Applications: applications})
		return nil
	})
}

func NewGetApplicationHandler(api backend.API, path string) pkghttp.Handler {
	return newHandler(http.MethodGet, path, func(w pkghttp.ResponseWriter, r *http.Request) error {
		applicationID, err := idParameter(r, "applicationID", nil)
		if err != nil {
			return err
		}

		application, err := api.GetApplication(r.Context(), applicationID)
		if err != nil {
			return err
		}

		w.SetJSONBody(application)
		return nil
	})
}

// NewUpdateMyApplicationHandler lets the adopter change the reason of a submitted
// application. Status changes are left to administrators.
func NewUpdateMyApplicationHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPut, "/applications/{applicationID}", func(w pkghttp.ResponseWriter, r *http.Request) error {
		applicationID, err := idParameter(r, "applicationID", nil)
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[submitApplicationIn](), err)
		if err != nil {
			return err
		}

		err = api.UpdateApplicationByAdopter(r.Context(), applicationID, backend.ApplicationUpdate{Reason: in.Reason})
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

func NewListApplicationsHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodGet, "/admin/applications", func(w pkghttp.ResponseWriter, r *http.Request) error {
		page, limit, err := pageParameters(r)
		status, err := pkghttp.ParseRequest(r, pkghttp.QueryParameterOptional[string]("application_status"), err)
		if err != nil {
			return err
		}

		filter := backend.ApplicationFilter{Page: page, Limit: limit}
		if status != nil {
			filter.Status = backend.ApplicationStatus(*status)
		}

		result, err := api.ListApplications(r.Context(), filter)
		if err != nil {
			return err
		}

		w.SetJSONBody(result)
		return nil
	})
}

func NewUpdateApplicationStatusHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPatch, "/admin/applications/{applicationID}/status", func(w pkghttp.ResponseWriter, r *http.Request) error {
		applicationID, err := idParameter(r, "applicationID", nil)
		in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[updateApplicationStatusIn](), err)
		if err != nil {
			return err
		}

		switch in.Status {
		case backend.ApplicationStatusSubmitted, backend.ApplicationStatusApproved, backend.ApplicationStatusRejected:
		default:
			return fmt.Errorf("%w: unknown application status %q", ErrInvalidInput, in.Status)
		}

		if err = api.UpdateApplicationStatus(r.Context(), applicationID, in.Status); err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

type submitApplicationIn struct {
	Reason *string `json:"reason"`
}

type updateApplicationStatusIn struct {
	Status backend.ApplicationStatus `json:"application_status"`
}

type applicationsOut struct {
	Applications []backend.Application `json:"applications"`
}
