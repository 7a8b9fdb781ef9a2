package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/adoption-portal/internal/auth"
	authmock "github.com/klwxsrx/adoption-portal/internal/auth/mock"
)

func TestSession_LoginThenCurrent(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()

	session, err := auth.NewSession(auth.RoleAdopter, store)
	require.NoError(t, err)

	_, ok, err := session.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, session.Login(ctx, "tok1"))
	require.NoError(t, session.Login(ctx, "tok1"))

	token, ok, err := session.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, auth.Token("tok1"), token)

	stored, ok, err := store.Get(ctx, auth.AdopterTokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, auth.Token("tok1"), stored)
}

func TestSession_LoginOverwritesOwnRoleOnly(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	require.NoError(t, store.Set(ctx, auth.AdminTokenKey, "admin-token"))

	session, err := auth.NewSession(auth.RoleAdopter, store)
	require.NoError(t, err)
	require.NoError(t, session.Login(ctx, "tok1"))
	require.NoError(t, session.Login(ctx, "tok2"))

	admin, adopter, err := auth.LoadCredentials(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, auth.Token("admin-token"), admin)
	assert.Equal(t, auth.Token("tok2"), adopter)
}

func TestSession_RestoresTokenFromStore(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()
	require.NoError(t, store.Set(ctx, auth.AdopterTokenKey, "persisted"))

	session, err := auth.NewSession(auth.RoleAdopter, store)
	require.NoError(t, err)

	token, ok, err := session.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, auth.Token("persisted"), token)
}

func TestSession_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()

	session, err := auth.NewSession(auth.RoleAdopter, store)
	require.NoError(t, err)
	require.NoError(t, session.Login(ctx, "tok1"))

	require.NoError(t, session.Logout(ctx))
	require.NoError(t, session.Logout(ctx))

	_, ok, err := store.Get(ctx, auth.AdopterTokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = session.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Errors(t *testing.T) {
	ctx := context.Background()
	errStore := errors.New("store unavailable")

	tests := []struct {
		name   string
		store  func(ctrl *gomock.Controller) auth.CredentialStore
		action func(session *auth.Session) error
		expect func(t *testing.T, session *auth.Session, err error)
	}{
		{
			name: "empty_token_rejected",
			store: func(ctrl *gomock.Controller) auth.CredentialStore {
				return authmock.NewCredentialStore(ctrl)
			},
			action: func(session *auth.Session) error {
				return session.Login(ctx, "")
			},
			expect: func(t *testing.T, _ *auth.Session, err error) {
				assert.ErrorIs(t, err, auth.ErrEmptyToken)
			},
		},
		{
			name: "memory_unchanged_when_store_write_fails",
			store: func(ctrl *gomock.Controller) auth.CredentialStore {
				store := authmock.NewCredentialStore(ctrl)
				store.EXPECT().Get(gomock.Any(), auth.AdopterTokenKey).Return(auth.Token("old"), true, nil)
				store.EXPECT().Set(gomock.Any(), auth.AdopterTokenKey, auth.Token("new")).Return(errStore)
				return store
			},
			action: func(session *auth.Session) error {
				_, _, _ = session.Current(ctx)
				return session.Login(ctx, "new")
			},
			expect: func(t *testing.T, session *auth.Session, err error) {
				assert.ErrorIs(t, err, errStore)
				token, _, _ := session.Current(ctx)
				assert.Equal(t, auth.Token("old"), token)
			},
		},
		{
			name: "memory_kept_when_store_remove_fails",
			store: func(ctrl *gomock.Controller) auth.CredentialStore {
				store := authmock.NewCredentialStore(ctrl)
				store.EXPECT().Get(gomock.Any(), auth.AdopterTokenKey).Return(auth.Token("old"), true, nil)
				store.EXPECT().Remove(gomock.Any(), auth.AdopterTokenKey).Return(errStore)
				return store
			},
			action: func(session *auth.Session) error {
				_, _, _ = session.Current(ctx)
				return session.Logout(ctx)
			},
			expect: func(t *testing.T, session *auth.Session, err error) {
				assert.ErrorIs(t, err, errStore)
				_, ok, _ := session.Current(ctx)
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			session, err := auth.NewSession(auth.RoleAdopter, tt.store(ctrl))
			require.NoError(t, err)

			tt.expect(t, session, tt.action(session))
		})
	}
}

func TestSession_CurrentReturnsStoreError(t *testing.T) {
	store := authmock.NewCredentialStore(gomock.NewController(t))
	store.EXPECT().Get(gomock.Any(), auth.AdminTokenKey).Return(auth.Token(""), false, errors.New("store unavailable"))

	session, err := auth.NewSession(auth.RoleAdmin, store)
	require.NoError(t, err)

	_, ok, err := session.Current(context.Background())
	assert.ErrorContains(t, err, "store unavailable")
	assert.False(t, ok)
}

func TestNewSession_RejectsUnknownRole(t *testing.T) {
	_, err := auth.NewSession(auth.Role("Guest"), auth.NewMemoryStore())
	assert.Error(t, err)
}

func TestSession_KeepsBrowsersApart(t *testing.T) {
	store := auth.NewBrowserStore(auth.NewMemoryStore())
	first := auth.WithBrowser(context.Background(), "browser-1")
	second := auth.WithBrowser(context.Background(), "browser-2")

	session, err := auth.NewSession(auth.RoleAdmin, store)
	require.NoError(t, err)
	require.NoError(t, session.Login(first, "admin-token"))

	token, ok, err := session.Current(first)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, auth.Token("admin-token"), token)

	_, ok, err = session.Current(second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, auth.SignOutAll(second, store, session))
	_, ok, err = session.Current(first)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, auth.SignOutAll(first, store, session))
	_, ok, err = session.Current(first)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignOutAll_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	store := auth.NewMemoryStore()

	adopter, err := auth.NewSession(auth.RoleAdopter, store)
	require.NoError(t, err)
	admin, err := auth.NewSession(auth.RoleAdmin, store)
	require.NoError(t, err)
	require.NoError(t, adopter.Login(ctx, "adopter-token"))
	require.NoError(t, admin.Login(ctx, "admin-token"))

	require.NoError(t, auth.SignOutAll(ctx, store, adopter, admin))

	for _, key := range []auth.Key{auth.AdminTokenKey, auth.AdopterTokenKey} {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	_, ok, err := adopter.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = admin.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignOutAll_ContinuesAfterRemoveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	errStore := errors.New("store unavailable")

	store := authmock.NewCredentialStore(ctrl)
	store.EXPECT().Remove(gomock.Any(), auth.AdminTokenKey).Return(errStore)
	store.EXPECT().Remove(gomock.Any(), auth.AdopterTokenKey).Return(nil)

	err := auth.SignOutAll(context.Background(), store)
	assert.ErrorIs(t, err, errStore)
}
