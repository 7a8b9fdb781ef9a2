package portal

import (
	"fmt"
	"time"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	"github.com/klwxsrx/adoption-portal/internal/backend"
	commonhttp "github.com/klwxsrx/adoption-portal/internal/pkg/http"
	"github.com/klwxsrx/adoption-portal/internal/portal/infra/http"
	pkgenv "github.com/klwxsrx/adoption-portal/pkg/env"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
	pkglazy "github.com/klwxsrx/adoption-portal/pkg/lazy"
	pkglog "github.com/klwxsrx/adoption-portal/pkg/log"
	pkgtime "github.com/klwxsrx/adoption-portal/pkg/time"
)

type DependencyContainer struct {
	AdopterSession pkglazy.Loader[*auth.Session]
	AdminSession   pkglazy.Loader[*auth.Session]
	ClientFactory  pkglazy.Loader[*commonhttp.ClientFactory]

	adopterAPI pkglazy.Loader[backend.API]
	adminAPI   pkglazy.Loader[backend.API]
	sharedAPI  pkglazy.Loader[backend.API]

	store  pkglazy.Loader[auth.CredentialStore]
	logger pkglazy.Loader[pkglog.Logger]
}

func NewDependencyContainer(
	store pkglazy.Loader[auth.CredentialStore],
	clock pkglazy.Loader[pkgtime.Clock],
	logger pkglazy.Loader[pkglog.Logger],
) *DependencyContainer {
	browserStore := pkglazy.New(func() (auth.CredentialStore, error) {
		return auth.NewBrowserStore(store.MustLoad()), nil
	})
	adopterSession := sessionProvider(auth.RoleAdopter, browserStore)
	adminSession := sessionProvider(auth.RoleAdmin, browserStore)

	authenticator := authenticatorProvider(browserStore, adopterSession, adminSession, clock, logger)
	clientFactory := clientFactoryProvider(authenticator, logger)

	return &DependencyContainer{
		AdopterSession: adopterSession,
		AdminSession:   adminSession,
		ClientFactory:  clientFactory,
		adopterAPI: pkglazy.New(func() (backend.API, error) {
			client, err := clientFactory.MustLoad().InitClient(auth.RoleAdopter)
			if err != nil {
				return nil, err
			}
			return backend.NewAPI(client), nil
		}),
		adminAPI: pkglazy.New(func() (backend.API, error) {
			client, err := clientFactory.MustLoad().InitClient(auth.RoleAdmin)
			if err != nil {
				return nil, err
			}
			return backend.NewAPI(client), nil
		}),
		sharedAPI: pkglazy.New(func() (backend.API, error) {
			return backend.NewAPI(clientFactory.MustLoad().InitSharedClient()), nil
		}),
		store:  browserStore,
		logger: logger,
	}
}

// MustRegisterHTTPHandlers registers the public views and the two guarded view trees. Every
// view works with the credentials of the requesting browser only.
func (c *DependencyContainer) MustRegisterHTTPHandlers(server pkghttp.Server) {
	errorMapping := pkghttp.WithErrorMapping(http.ErrorMapping())
	crossOrigin := pkghttp.WithCrossOriginProtection()
	browserScope := pkghttp.WithMW(auth.BrowserScope())
	logger := c.logger.MustLoad()
	adopterSession := c.AdopterSession.MustLoad()
	adminSession := c.AdminSession.MustLoad()
	adopterAPI := c.adopterAPI.MustLoad()
	adminAPI := c.adminAPI.MustLoad()

	public := server.Group(errorMapping, crossOrigin, browserScope)
	public.Register(http.NewLoginPageHandler(adopterSession))
	public.Register(http.NewLoginHandler(adopterAPI, adopterSession))
	public.Register(http.NewLogoutHandler(adopterSession))
	public.Register(http.NewLoginPageHandler(adminSession))
	public.Register(http.NewLoginHandler(adminAPI, adminSession))
	public.Register(http.NewLogoutHandler(adminSession))
	public.Register(http.NewRegisterHandler(adopterAPI))
	public.Register(http.NewCurrentUserHandler(c.sharedAPI.MustLoad()))

	adopter := server.Group(
		errorMapping,
		crossOrigin,
		browserScope,
		pkghttp.WithMW(pkghttp.ServerMiddleware(auth.AdopterGuard(adopterSession, logger))),
	)
	adopter.Register(http.NewListAnimalsHandler(adopterAPI, http.AdopterHomePath))
	adopter.Register(http.NewGetAnimalHandler(adopterAPI, "/animals/{animalID}"))
	adopter.Register(http.NewSubmitApplicationHandler(adopterAPI))
	adopter.Register(http.NewListMyApplicationsHandler(adopterAPI))
	adopter.Register(http.NewGetApplicationHandler(adopterAPI, "/applications/{applicationID}"))
	adopter.Register(http.NewUpdateMyApplicationHandler(adopterAPI))
	adopter.Register(http.NewGetProfileHandler(adopterAPI))
	adopter.Register(http.NewUpdateProfileHandler(adopterAPI))

	admin := server.Group(
		errorMapping,
		crossOrigin,
		browserScope,
		pkghttp.WithMW(pkghttp.ServerMiddleware(auth.AdminGuard(c.store.MustLoad(), logger))),
	)
	admin.Register(http.NewDashboardHandler(adminAPI))
	admin.Register(http.NewListAnimalsHandler(adminAPI, "/admin/animals"))
	admin.Register(http.NewCreateAnimalHandler(adminAPI))
	admin.Register(http.NewGetAnimalHandler(adminAPI, "/admin/animals/{animalID}"))
	admin.Register(http.NewUpdateAnimalHandler(adminAPI))
	admin.Register(http.NewDeleteAnimalHandler(adminAPI))
	admin.Register(http.NewListApplicationsHandler(adminAPI))
	admin.Register(http.NewGetApplicationHandler(adminAPI, "/admin/applications/{applicationID}"))
	admin.Register(http.NewUpdateApplicationStatusHandler(adminAPI))
	admin.Register(http.NewListAdoptersHandler(adminAPI))
	admin.Register(http.NewDeleteAdopterHandler(adminAPI))
	admin.Register(http.NewListAdminsHandler(adminAPI))
	admin.Register(http.NewCreateAdminHandler(adminAPI))
	admin.Register(http.NewUpdateAdminHandler(adminAPI))
	admin.Register(http.NewDeleteAdminHandler(adminAPI))
}

func sessionProvider(
	role auth.Role,
	store pkglazy.Loader[auth.CredentialStore],
) pkglazy.Loader[*auth.Session] {
	return pkglazy.New(func() (*auth.Session, error) {
		session, err := auth.NewSession(role, store.MustLoad())
		if err != nil {
			return nil, fmt.Errorf("init %s session: %w", role, err)
		}
		return session, nil
	})
}

func authenticatorProvider(
	store pkglazy.Loader[auth.CredentialStore],
	adopterSession pkglazy.Loader[*auth.Session],
	adminSession pkglazy.Loader[*auth.Session],
	clock pkglazy.Loader[pkgtime.Clock],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[*commonhttp.Authenticator] {
	return pkglazy.New(func() (*commonhttp.Authenticator, error) {
		return commonhttp.NewAuthenticator(
			store.MustLoad(),
			[]*auth.Session{adopterSession.MustLoad(), adminSession.MustLoad()},
			auth.NewContextNavigator(logger.MustLoad()),
			clock.MustLoad(),
			logger.MustLoad(),
			commonhttp.AuthConfig{
				ExpiryPrecheck: pkgenv.Must(pkgenv.ParseDefault("AUTH_EXPIRY_PRECHECK", false)),
			},
		), nil
	})
}

func clientFactoryProvider(
	authenticator pkglazy.Loader[*commonhttp.Authenticator],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[*commonhttp.ClientFactory] {
	return pkglazy.New(func() (*commonhttp.ClientFactory, error) {
		baseURL, err := pkgenv.Parse[string]("API_BASE_URL")
		if err != nil {
			return nil, err
		}
		timeout, err := pkgenv.ParseDefault[time.Duration]("API_TIMEOUT", 0)
		if err != nil {
			return nil, err
		}

		return commonhttp.NewClientFactory(baseURL, timeout, authenticator.MustLoad(), logger.MustLoad()), nil
	})
}
