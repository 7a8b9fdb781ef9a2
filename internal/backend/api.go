//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "API=API"
package backend

import (
	"context"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

type API interface {
	LoginAdopter(ctx context.Context, credentials Credentials) (auth.Token, error)
	LoginAdmin(ctx context.Context, credentials Credentials) (auth.Token, error)

	ListAnimals(ctx context.Context, filter AnimalFilter) (AnimalPage, error)
	GetAnimal(ctx context.Context, id int) (Animal, error)
	CreateAnimal(ctx context.Context, input AnimalInput, image Image) (Animal, error)
	UpdateAnimal(ctx context.Context, id int, input *AnimalInput, image *Image) error
	DeleteAnimal(ctx context.Context, id int) error

	SubmitApplication(ctx context.Context, input ApplicationInput) (Application, error)
	ListMyApplications(ctx context.Context) ([]Application, error)
	GetApplication(ctx context.Context, id int) (Application, error)
	UpdateApplicationByAdopter(ctx context.Context, id int, update ApplicationUpdate) error
	ListApplications(ctx context.Context, filter ApplicationFilter) (ApplicationPage, error)
	UpdateApplicationStatus(ctx context.Context, id int, status ApplicationStatus) error

	CurrentUser(ctx context.Context) (User, error)
	RegisterAdopter(ctx context.Context, input UserInput) error
	UpdateAdopter(ctx context.Context, id int, input UserInput) error
	ListAdopters(ctx context.Context, filter UserFilter) (AdopterPage, error)
	DeleteAdopter(ctx context.Context, id int) error
	CreateAdmin(ctx context.Context, input UserInput) (int, error)
	UpdateAdmin(ctx context.Context, id int, input UserInput) error
	ListAdmins(ctx context.Context, filter UserFilter) (UserPage, error)
	DeleteAdmin(ctx context.Context, id int) error

	DashboardSummary(ctx context.Context) (DashboardSummary, error)
}

type api struct {
	client pkghttp.Client
}

// NewAPI wraps a backend HTTP client. Which token the calls carry is decided by the client.
func NewAPI(client pkghttp.Client) API {
	return api{client: client}
}
