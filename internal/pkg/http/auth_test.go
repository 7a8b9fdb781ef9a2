package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	"github.com/klwxsrx/adoption-portal/internal/auth/authtest"
	authmock "github.com/klwxsrx/adoption-portal/internal/auth/mock"
	internalhttp "github.com/klwxsrx/adoption-portal/internal/pkg/http"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
	"github.com/klwxsrx/adoption-portal/pkg/log"
	pkgtime "github.com/klwxsrx/adoption-portal/pkg/time"
)

var routeAnimals = pkghttp.Route{Method: http.MethodGet, URL: "/animal-management/animals"}

type backend struct {
	*httptest.Server
	status        int
	calls         atomic.Int32
	authorization atomic.Value
}

func newBackend(t *testing.T, status int) *backend {
	b := &backend{status: status}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		b.authorization.Store(r.Header.Get("Authorization"))
		w.WriteHeader(b.status)
	}))
	t.Cleanup(b.Close)
	return b
}

func (b *backend) lastAuthorization() string {
	v, _ := b.authorization.Load().(string)
	return v
}

type fixture struct {
	store     auth.CredentialStore
	adopter   *auth.Session
	admin     *auth.Session
	navigator *authmock.Navigator
	factory   *internalhttp.ClientFactory
}

func newFixture(t *testing.T, baseURL string, config internalhttp.AuthConfig, tokens map[auth.Key]auth.Token) fixture {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	for key, token := range tokens {
		require.NoError(t, store.Set(ctx, key, token))
	}

	adopter, err := auth.NewSession(auth.RoleAdopter, store)
	require.NoError(t, err)
	admin, err := auth.NewSession(auth.RoleAdmin, store)
	require.NoError(t, err)

	navigator := authmock.NewNavigator(gomock.NewController(t))
	logger := log.New(log.LevelDisabled)
	authenticator := internalhttp.NewAuthenticator(
		store,
		[]*auth.Session{adopter, admin},
		navigator,
		pkgtime.NewClock(),
		logger,
		config,
	)

	return fixture{
		store:     store,
		adopter:   adopter,
		admin:     admin,
		navigator: navigator,
		factory:   internalhttp.NewClientFactory(baseURL, time.Second, authenticator, logger),
	}
}

func (f fixture) assertSignedOut(t *testing.T) {
	admin, adopter, err := auth.LoadCredentials(context.Background(), f.store)
	require.NoError(t, err)
	assert.Empty(t, admin)
	assert.Empty(t, adopter)

	_, ok, err := f.adopter.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = f.admin.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWithCredentials_AttachesToken(t *testing.T) {
	adminToken := authtest.ValidToken(t, auth.RoleAdmin, "1")
	adopterToken := authtest.ValidToken(t, auth.RoleAdopter, "2")

	tests := []struct {
		name   string
		tokens map[auth.Key]auth.Token
		client func(f fixture, opts ...pkghttp.ClientOption) pkghttp.Client
		expect func(t *testing.T, authorization string, identity auth.Identity, hasIdentity bool)
	}{
		{
			name: "shared_client_prefers_admin_token",
			tokens: map[auth.Key]auth.Token{
				auth.AdminTokenKey:   adminToken,
				auth.AdopterTokenKey: adopterToken,
			},
			client: func(f fixture, opts ...pkghttp.ClientOption) pkghttp.Client {
				return f.factory.InitSharedClient(opts...)
			},
			expect: func(t *testing.T, authorization string, identity auth.Identity, hasIdentity bool) {
				assert.Equal(t, "Bearer "+string(adminToken), authorization)
				assert.True(t, hasIdentity)
				assert.Equal(t, auth.Identity{Role: auth.RoleAdmin, Subject: "1"}, identity)
			},
		},
		{
			name:   "shared_client_uses_adopter_token_alone",
			tokens: map[auth.Key]auth.Token{auth.AdopterTokenKey: adopterToken},
			client: func(f fixture, opts ...pkghttp.ClientOption) pkghttp.Client {
				return f.factory.InitSharedClient(opts...)
			},
			expect: func(t *testing.T, authorization string, identity auth.Identity, hasIdentity bool) {
				assert.Equal(t, "Bearer "+string(adopterToken), authorization)
				assert.True(t, hasIdentity)
				assert.Equal(t, auth.RoleAdopter, identity.Role)
			},
		},
		{
			name: "pinned_client_uses_own_role_token",
			tokens: map[auth.Key]auth.Token{
				auth.AdminTokenKey:   adminToken,
				auth.AdopterTokenKey: adopterToken,
			},
			client: func(f fixture, opts ...pkghttp.ClientOption) pkghttp.Client {
				return f.factory.MustInitClient(auth.RoleAdopter, opts...)
			},
			expect: func(t *testing.T, authorization string, identity auth.Identity, _ bool) {
				assert.Equal(t, "Bearer "+string(adopterToken), authorization)
				assert.Equal(t, "2", identity.Subject)
			},
		},
		{
			name:   "anonymous_without_token",
			tokens: map[auth.Key]auth.Token{auth.AdopterTokenKey: adopterToken},
			client: func(f fixture, opts ...pkghttp.ClientOption) pkghttp.Client {
				return f.factory.MustInitClient(auth.RoleAdmin, opts...)
			},
			expect: func(t *testing.T, authorization string, _ auth.Identity, hasIdentity bool) {
				assert.Empty(t, authorization)
				assert.False(t, hasIdentity)
			},
		},
		{
			name:   "undecodable_token_still_attached",
			tokens: map[auth.Key]auth.Token{auth.AdopterTokenKey: "opaque"},
			client: func(f fixture, opts ...pkghttp.ClientOption) pkghttp.Client {
				return f.factory.InitSharedClient(opts...)
			},
			expect: func(t *testing.T, authorization string, _ auth.Identity, hasIdentity bool) {
				assert.Equal(t, "Bearer opaque", authorization)
				assert.False(t, hasIdentity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, http.StatusOK)
			f := newFixture(t, srv.URL, internalhttp.AuthConfig{}, tt.tokens)

			var identity auth.Identity
			var hasIdentity bool
			client := tt.client(f, pkghttp.WithResponseHook(func(resp *resty.Response) error {
				identity, hasIdentity = auth.IdentityFromContext(resp.Request.Context())
				return nil
			}))

			_, err := client.NewRequest(context.Background(), routeAnimals).Send()
			require.NoError(t, err)

			tt.expect(t, srv.lastAuthorization(), identity, hasIdentity)
		})
	}
}

func TestWithCredentials_AbortsOnStoreError(t *testing.T) {
	srv := newBackend(t, http.StatusOK)
	errStore := errors.New("store unavailable")

	store := authmock.NewCredentialStore(gomock.NewController(t))
	store.EXPECT().Get(gomock.Any(), auth.AdminTokenKey).Return(auth.Token(""), false, errStore)

	authenticator := internalhttp.NewAuthenticator(store, nil, auth.NewContextNavigator(log.New(log.LevelDisabled)),
		pkgtime.NewClock(), log.New(log.LevelDisabled), internalhttp.AuthConfig{})
	client := internalhttp.NewClientFactory(srv.URL, time.Second, authenticator, log.New(log.LevelDisabled)).InitSharedClient()

	_, err := client.NewRequest(context.Background(), routeAnimals).Send()
	assert.ErrorIs(t, err, errStore)
	assert.Zero(t, srv.calls.Load())
}

func TestWithUnauthorizedHandling(t *testing.T) {
	adminToken := authtest.ValidToken(t, auth.RoleAdmin, "1")
	adopterToken := authtest.ValidToken(t, auth.RoleAdopter, "2")

	tests := []struct {
		name         string
		tokens       map[auth.Key]auth.Token
		client       func(f fixture) pkghttp.Client
		expectedPath string
	}{
		{
			name: "admin_session_goes_to_admin_login",
			tokens: map[auth.Key]auth.Token{
				auth.AdminTokenKey:   adminToken,
				auth.AdopterTokenKey: adopterToken,
			},
			client: func(f fixture) pkghttp.Client {
				return f.factory.InitSharedClient()
			},
			expectedPath: "/admin/login",
		},
		{
			name:   "adopter_session_goes_to_login",
			tokens: map[auth.Key]auth.Token{auth.AdopterTokenKey: adopterToken},
			client: func(f fixture) pkghttp.Client {
				return f.factory.InitSharedClient()
			},
			expectedPath: "/login",
		},
		{
			name: "no_tokens_default_to_login",
			client: func(f fixture) pkghttp.Client {
				return f.factory.InitSharedClient()
			},
			expectedPath: "/login",
		},
		{
			name: "undecodable_tokens_default_to_login",
			tokens: map[auth.Key]auth.Token{
				auth.AdminTokenKey:   "broken",
				auth.AdopterTokenKey: "broken",
			},
			client: func(f fixture) pkghttp.Client {
				return f.factory.InitSharedClient()
			},
			expectedPath: "/login",
		},
		{
			name: "pinned_adopter_client_checks_own_role_first",
			tokens: map[auth.Key]auth.Token{
				auth.AdminTokenKey:   adminToken,
				auth.AdopterTokenKey: adopterToken,
			},
			client: func(f fixture) pkghttp.Client {
				return f.factory.MustInitClient(auth.RoleAdopter)
			},
			expectedPath: "/login",
		},
		{
			name: "pinned_admin_client_falls_back_to_admin_login",
			client: func(f fixture) pkghttp.Client {
				return f.factory.MustInitClient(auth.RoleAdmin)
			},
			expectedPath: "/admin/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, http.StatusUnauthorized)
			f := newFixture(t, srv.URL, internalhttp.AuthConfig{}, tt.tokens)
			f.navigator.EXPECT().Navigate(gomock.Any(), tt.expectedPath)

			resp, err := tt.client(f).NewRequest(context.Background(), routeAnimals).Send()
			assert.ErrorIs(t, err, auth.ErrUnauthorized)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

			f.assertSignedOut(t)
		})
	}
}

func TestWithUnauthorizedHandling_PassesOtherResponses(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusForbidden, http.StatusInternalServerError} {
		srv := newBackend(t, status)
		f := newFixture(t, srv.URL, internalhttp.AuthConfig{}, map[auth.Key]auth.Token{
			auth.AdopterTokenKey: authtest.ValidToken(t, auth.RoleAdopter, "2"),
		})

		resp, err := f.factory.InitSharedClient().NewRequest(context.Background(), routeAnimals).Send()
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode())

		_, ok, err := f.adopter.Current(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestWithUnauthorizedHandling_ReturnsStoreErrors(t *testing.T) {
	srv := newBackend(t, http.StatusUnauthorized)
	errStore := errors.New("store unavailable")

	store := authmock.NewCredentialStore(gomock.NewController(t))
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(auth.Token(""), false, nil).AnyTimes()
	store.EXPECT().Remove(gomock.Any(), auth.AdminTokenKey).Return(errStore)
	store.EXPECT().Remove(gomock.Any(), auth.AdopterTokenKey).Return(nil)

	var navigated string
	navigator := auth.NavigatorFunc(func(_ context.Context, path string) { navigated = path })
	authenticator := internalhttp.NewAuthenticator(store, nil, navigator,
		pkgtime.NewClock(), log.New(log.LevelDisabled), internalhttp.AuthConfig{})
	client := internalhttp.NewClientFactory(srv.URL, time.Second, authenticator, log.New(log.LevelDisabled)).InitSharedClient()

	_, err := client.NewRequest(context.Background(), routeAnimals).Send()
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, "/login", navigated)
}

func TestWithCredentials_ExpiryPrecheck(t *testing.T) {
	expired := authtest.Token(t, auth.RoleAdmin, "1", time.Now().Add(-time.Minute))

	t.Run("disabled_sends_expired_token", func(t *testing.T) {
		srv := newBackend(t, http.StatusOK)
		f := newFixture(t, srv.URL, internalhttp.AuthConfig{}, map[auth.Key]auth.Token{auth.AdminTokenKey: expired})

		_, err := f.factory.InitSharedClient().NewRequest(context.Background(), routeAnimals).Send()
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+string(expired), srv.lastAuthorization())
	})

	t.Run("enabled_ends_session_locally", func(t *testing.T) {
		srv := newBackend(t, http.StatusOK)
		f := newFixture(t, srv.URL, internalhttp.AuthConfig{ExpiryPrecheck: true}, map[auth.Key]auth.Token{auth.AdminTokenKey: expired})
		f.navigator.EXPECT().Navigate(gomock.Any(), "/admin/login")

		_, err := f.factory.InitSharedClient().NewRequest(context.Background(), routeAnimals).Send()
		assert.ErrorIs(t, err, auth.ErrUnauthorized)
		assert.Zero(t, srv.calls.Load())
		f.assertSignedOut(t)
	})
}

func TestClientFactory_RoleBaseURLOverride(t *testing.T) {
	defaultBackend := newBackend(t, http.StatusOK)
	adminBackend := newBackend(t, http.StatusOK)
	t.Setenv("ADMIN_API_BASE_URL", adminBackend.URL)

	f := newFixture(t, defaultBackend.URL, internalhttp.AuthConfig{}, nil)

	_, err := f.factory.MustInitClient(auth.RoleAdmin).NewRequest(context.Background(), routeAnimals).Send()
	require.NoError(t, err)
	_, err = f.factory.MustInitClient(auth.RoleAdopter).NewRequest(context.Background(), routeAnimals).Send()
	require.NoError(t, err)

	assert.EqualValues(t, 1, adminBackend.calls.Load())
	assert.EqualValues(t, 1, defaultBackend.calls.Load())

	_, err = f.factory.InitClient(auth.Role("Guest"))
	assert.Error(t, err)
}
