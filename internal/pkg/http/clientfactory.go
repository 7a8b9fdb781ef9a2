package http

import (
	"fmt"
	"time"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	pkgenv "github.com/klwxsrx/adoption-portal/pkg/env"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
	pkglog "github.com/klwxsrx/adoption-portal/pkg/log"
	pkgstrings "github.com/klwxsrx/adoption-portal/pkg/strings"
)

const (
	DestinationBackend = "backend"

	defaultTimeout = 30 * time.Second
)

type ClientFactory struct {
	baseURL       string
	timeout       time.Duration
	authenticator *Authenticator
	logger        pkglog.Logger
}

func NewClientFactory(
	baseURL string,
	timeout time.Duration,
	authenticator *Authenticator,
	logger pkglog.Logger,
) *ClientFactory {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &ClientFactory{
		baseURL:       baseURL,
		timeout:       timeout,
		authenticator: authenticator,
		logger:        logger,
	}
}

// InitClient returns a backend client carrying only the role's token. The base URL comes
// from <ROLE>_API_BASE_URL when set.
func (f *ClientFactory) InitClient(role auth.Role, extraOpts ...pkghttp.ClientOption) (pkghttp.Client, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("init client: unknown role %q", role)
	}

	baseURLEnv := fmt.Sprintf("%s_API_BASE_URL", pkgstrings.ToScreamingSnakeCase(string(role)))
	baseURL, err := pkgenv.ParseDefault(baseURLEnv, f.baseURL)
	if err != nil {
		return nil, err
	}

	destination := fmt.Sprintf("%s-%s", DestinationBackend, pkgstrings.ToKebabCase(string(role)))
	return f.httpClient(baseURL, destination, PinnedCredentials(role), extraOpts...), nil
}

func (f *ClientFactory) MustInitClient(role auth.Role, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	return pkgenv.Must(f.InitClient(role, extraOpts...))
}

// InitSharedClient returns a backend client for role-agnostic calls. It carries the
// administrator token when present, the adopter token otherwise.
func (f *ClientFactory) InitSharedClient(extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	return f.httpClient(f.baseURL, DestinationBackend, SharedCredentials(), extraOpts...)
}

func (f *ClientFactory) httpClient(
	baseURL string,
	destinationName string,
	source CredentialSource,
	extraOpts ...pkghttp.ClientOption,
) pkghttp.Client {
	opts := append([]pkghttp.ClientOption{
		pkghttp.WithClientDestination(destinationName, baseURL),
		pkghttp.WithTimeout(f.timeout),
		pkghttp.WithRequestHeader("Accept", "application/json"),
		pkghttp.WithRequestIDPropagation(),
		pkghttp.WithRequestLogging(f.logger, pkglog.LevelInfo, pkglog.LevelWarn, auth.ErrUnauthorized),
		f.authenticator.WithAuth(source),
	}, extraOpts...)

	return pkghttp.NewClient(opts...)
}
