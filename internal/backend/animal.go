package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

const (
	formFieldRequestData = "request_data"
	formFieldAnimalImage = "animal_image"
)

var (
	routeListAnimals  = pkghttp.Route{Method: http.MethodGet, URL: "/animal-management/animals"}
	routeGetAnimal    = pkghttp.Route{Method: http.MethodGet, URL: "/animal-management/animals/{id}"}
	routeCreateAnimal = pkghttp.Route{Method: http.MethodPost, URL: "/animal-management/animals"}
	routeUpdateAnimal = pkghttp.Route{Method: http.MethodPut, URL: "/animal-management/animals/{id}"}
	routeDeleteAnimal = pkghttp.Route{Method: http.MethodDelete, URL: "/animal-management/animals/{id}"}
)

func (a api) ListAnimals(ctx context.Context, filter AnimalFilter) (AnimalPage, error) {
	page, limit := pageParams(filter.Page, filter.Limit)
	return sendAndParse[AnimalPage](a.client.NewRequest(ctx, routeListAnimals).
		SetQueryParam("page", page).
		SetQueryParam("limit", limit).
		SetQueryParam("search", filter.Search).
		SetQueryParam("gender", filter.Gender).
		SetQueryParam("adoption_status", string(filter.AdoptionStatus)))
}

func (a api) GetAnimal(ctx context.Context, id int) (Animal, error) {
	return sendAndParse[Animal](a.client.NewRequest(ctx, routeGetAnimal).
		SetPathParam("id", strconv.Itoa(id)))
}

// CreateAnimal uploads the animal as a multipart form: the JSON-encoded input plus the photo.
func (a api) CreateAnimal(ctx context.Context, input AnimalInput, image Image) (Animal, error) {
	requestData, err := json.Marshal(input)
	if err != nil {
		return Animal{}, fmt.Errorf("encode animal: %w", err)
	}

	return sendAndParse[Animal](a.client.NewRequest(ctx, routeCreateAnimal).
		SetMultipartField(formFieldRequestData, string(requestData)).
		SetFileReader(formFieldAnimalImage, image.FileName, image.Content))
}

// UpdateAnimal sends only the given parts; a nil input keeps the data, a nil image keeps the photo.
func (a api) UpdateAnimal(ctx context.Context, id int, input *AnimalInput, image *Image) error {
	req := a.client.NewRequest(ctx, routeUpdateAnimal).
		SetPathParam("id", strconv.Itoa(id))

	if input != nil {
		requestData, err := json.Marshal(input)
		if err != nil {
			return fmt.Errorf("encode animal: %w", err)
		}
		req.SetMultipartField(formFieldRequestData, string(requestData))
	}
	if image != nil {
		req.SetFileReader(formFieldAnimalImage, image.FileName, image.Content)
	}

	_, err := send(req)
	return err
}

func (a api) DeleteAnimal(ctx context.Context, id int) error {
	_, err := send(a.client.NewRequest(ctx, routeDeleteAnimal).
		SetPathParam("id", strconv.Itoa(id)))
	return err
}
