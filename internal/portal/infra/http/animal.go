package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/klwxsrx/adoption-portal/internal/backend"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

const (
	maxAnimalFormSize = 10 << 20

	formFieldRequestData = "request_data"
	formFieldAnimalImage = "animal_image"
)

func NewListAnimalsHandler(api backend.API, path string) pkghttp.Handler {
	return newHandler(http.MethodGet, path, func(w pkghttp.ResponseWriter, r *http.Request) error {
		page, limit, err := pageParameters(r)
		search, err := pkghttp.ParseRequest(r, pkghttp.QueryParameterOptional[string]("search"), err)
		gender, err := pkghttp.ParseRequest(r, pkghttp.QueryParameterOptional[string]("gender"), err)
		status, err := pkghttp.ParseRequest(r, pkghttp.QueryParameterOptional[string]("adoption_status"), err)
		if err != nil {
			return err
		}

		filter := backend.AnimalFilter{Page: page, Limit: limit}
		if search != nil {
			filter.Search = *search
		}
		if gender != nil {
			filter.Gender = *gender
		}
		if status != nil {
			filter.AdoptionStatus = backend.AdoptionStatus(*status)
		}

		result, err := api.ListAnimals(r.Context(), filter)
		if err != nil {
			return err
		}

		w.SetJSONBody(result)
		return nil
	})
}

func NewGetAnimalHandler(api backend.API, path string) pkghttp.Handler {
	return newHandler(http.MethodGet, path, func(w pkghttp.ResponseWriter, r *http.Request) error {
		animalID, err := idParameter(r, "animalID", nil)
		if err != nil {
			return err
		}

		animal, err := api.GetAnimal(r.Context(), animalID)
		if err != nil {
			return err
		}

		w.SetJSONBody(animal)
		return nil
	})
}

func NewCreateAnimalHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPost, "/admin/animals", func(w pkghttp.ResponseWriter, r *http.Request) error {
		input, image, err := parseAnimalForm(r)
		if err != nil {
			return err
		}
		if input == nil || image == nil {
			return fmt.Errorf("%w: %s and %s are required", ErrInvalidInput, formFieldRequestData, formFieldAnimalImage)
		}
		if input.Name == "" || input.Species == "" {
			return fmt.Errorf("%w: name and species are required", ErrInvalidInput)
		}

		animal, err := api.CreateAnimal(r.Context(), *input, *image)
		if err != nil {
			return err
		}

		w.SetStatusCode(http.StatusCreated).SetJSONBody(animal)
		return nil
	})
}

func NewUpdateAnimalHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodPut, "/admin/animals/{animalID}", func(w pkghttp.ResponseWriter, r *http.Request) error {
		animalID, err := idParameter(r, "animalID", nil)
		if err != nil {
			return err
		}

		input, image, err := parseAnimalForm(r)
		if err != nil {
			return err
		}
		if input == nil && image == nil {
			return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
		}

		if err = api.UpdateAnimal(r.Context(), animalID, input, image); err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

func NewDeleteAnimalHandler(api backend.API) pkghttp.Handler {
	return newHandler(http.MethodDelete, "/admin/animals/{animalID}", func(w pkghttp.ResponseWriter, r *http.Request) error {
		animalID, err := idParameter(r, "animalID", nil)
		if err != nil {
			return err
		}

		if err = api.DeleteAnimal(r.Context(), animalID); err != nil {
			return err
		}

		w.SetStatusCode(http.StatusNoContent)
		return nil
	})
}

// parseAnimalForm reads the optional JSON animal data and the optional photo of a multipart
// form. The photo is buffered so it can be forwarded after the request body is consumed.
func parseAnimalForm(r *http.Request) (*backend.AnimalInput, *backend.Image, error) {
	if err := r.ParseMultipartForm(maxAnimalFormSize); err != nil {
		return nil, nil, fmt.Errorf("%w: parse multipart form: %w", pkghttp.ErrParsingError, err)
	}

	var input *backend.AnimalInput
	if data := r.FormValue(formFieldRequestData); data != "" {
		input = &backend.AnimalInput{}
		if err := json.Unmarshal([]byte(data), input); err != nil {
			return nil, nil, fmt.Errorf("%w: decode %s: %w", pkghttp.ErrParsingError, formFieldRequestData, err)
		}
	}

	file, header, err := r.FormFile(formFieldAnimalImage)
	if errors.Is(err, http.ErrMissingFile) {
		return input, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read %s: %w", pkghttp.ErrParsingError, formFieldAnimalImage, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", formFieldAnimalImage, err)
	}

	return input, &backend.Image{
		FileName: header.Filename,
		Content:  bytes.NewReader(content),
	}, nil
}
