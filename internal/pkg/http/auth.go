package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
	"github.com/klwxsrx/adoption-portal/pkg/log"
	pkgtime "github.com/klwxsrx/adoption-portal/pkg/time"
)

const HeaderAuthorization = "Authorization"

// CredentialSource selects the credentials a client works with: a single pinned role or
// both roles with administrator precedence.
type CredentialSource struct {
	pinned *auth.Role
}

func SharedCredentials() CredentialSource {
	return CredentialSource{}
}

func PinnedCredentials(role auth.Role) CredentialSource {
	return CredentialSource{pinned: &role}
}

func (s CredentialSource) resolve(ctx context.Context, store auth.CredentialStore) (auth.Credential, bool, error) {
	if s.pinned != nil {
		token, ok, err := store.Get(ctx, s.pinned.TokenKey())
		if err != nil || !ok || token == "" {
			return auth.Credential{}, false, err
		}
		return auth.Credential{Role: *s.pinned, Token: token}, true, nil
	}

	admin, adopter, err := auth.LoadCredentials(ctx, store)
	if err != nil {
		return auth.Credential{}, false, err
	}

	credential, ok := auth.ResolveActiveCredential(admin, adopter)
	return credential, ok, nil
}

// decodeOrder lists roles whose tokens identify the session on 401, most relevant first.
func (s CredentialSource) decodeOrder() []auth.Role {
	if s.pinned == nil {
		return auth.Roles
	}

	order := []auth.Role{*s.pinned}
	for _, role := range auth.Roles {
		if role != *s.pinned {
			order = append(order, role)
		}
	}
	return order
}

func (s CredentialSource) fallbackRole() auth.Role {
	if s.pinned != nil {
		return *s.pinned
	}

	return auth.RoleAdopter
}

type AuthConfig struct {
	// ExpiryPrecheck rejects requests locally when the attached token has expired.
	ExpiryPrecheck bool
}

type Authenticator struct {
	store     auth.CredentialStore
	sessions  []*auth.Session
	navigator auth.Navigator
	clock     pkgtime.Clock
	logger    log.Logger
	config    AuthConfig
}

func NewAuthenticator(
	store auth.CredentialStore,
	sessions []*auth.Session,
	navigator auth.Navigator,
	clock pkgtime.Clock,
	logger log.Logger,
	config AuthConfig,
) *Authenticator {
	return &Authenticator{
		store:     store,
		sessions:  sessions,
		navigator: navigator,
		clock:     clock,
		logger:    logger,
		config:    config,
	}
}

func (a *Authenticator) WithAuth(source CredentialSource) pkghttp.ClientOption {
	return func(c *pkghttp.ClientImpl) {
		a.WithCredentials(source)(c)
		a.WithUnauthorizedHandling(source)(c)
	}
}

// WithCredentials attaches the bearer token chosen by the source. Requests without a
// credential go out anonymously; a failed store read aborts the request.
func (a *Authenticator) WithCredentials(source CredentialSource) pkghttp.ClientOption {
	return pkghttp.WithRequestHook(func(req *resty.Request) error {
		ctx := req.Context()
		credential, ok, err := source.resolve(ctx, a.store)
		if err != nil {
			return fmt.Errorf("resolve credential: %w", err)
		}
		if !ok {
			return nil
		}

		claims, err := auth.Decode(credential.Token)
		if err != nil {
			a.logger.
				WithField("role", credential.Role).
				WithError(err).
				Warn(ctx, "failed to decode attached token")
		} else {
			if a.config.ExpiryPrecheck && claims.Expired(a.clock.Now(ctx)) {
				return a.signOut(ctx, source, "token expired")
			}

			req.SetContext(auth.WithIdentity(ctx, auth.Identity{
				Role:    claims.Role,
				Subject: claims.Subject,
			}))
		}

		req.SetHeader(HeaderAuthorization, auth.FormatAuthorization(credential.Token))
		return nil
	})
}

// WithUnauthorizedHandling ends the session on 401: both tokens are removed, the user is
// sent to the login page of the session's role and the call fails with auth.ErrUnauthorized.
// Other responses pass through.
func (a *Authenticator) WithUnauthorizedHandling(source CredentialSource) pkghttp.ClientOption {
	return pkghttp.WithResponseHook(func(resp *resty.Response) error {
		if resp.StatusCode() != http.StatusUnauthorized {
			return nil
		}

		return a.signOut(resp.Request.Context(), source, "backend rejected credentials")
	})
}

func (a *Authenticator) signOut(ctx context.Context, source CredentialSource, reason string) error {
	role := a.sessionRole(ctx, source)

	clearErr := auth.SignOutAll(ctx, a.store, a.sessions...)
	if clearErr != nil {
		a.logger.WithError(clearErr).Error(ctx, "failed to clear credentials")
	}

	path := role.LoginPath()
	a.navigator.Navigate(ctx, path)
	a.logger.With(log.Fields{
		"role":   role,
		"path":   path,
		"reason": reason,
	}).Info(ctx, "session ended")

	return errors.Join(fmt.Errorf("%w: %s", auth.ErrUnauthorized, reason), clearErr)
}

func (a *Authenticator) sessionRole(ctx context.Context, source CredentialSource) auth.Role {
	admin, adopter, err := auth.LoadCredentials(ctx, a.store)
	if err != nil {
		a.logger.WithError(err).Warn(ctx, "failed to read credentials of ended session")
		return source.fallbackRole()
	}

	tokens := map[auth.Role]auth.Token{
		auth.RoleAdmin:   admin,
		auth.RoleAdopter: adopter,
	}
	for _, role := range source.decodeOrder() {
		token := tokens[role]
		if token == "" {
			continue
		}

		claims, err := auth.Decode(token)
		if err != nil {
			a.logger.WithField("role", role).WithError(err).Warn(ctx, "failed to decode token of ended session")
			continue
		}
		return claims.Role
	}

	return source.fallbackRole()
}
