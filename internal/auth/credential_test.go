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

func TestResolveActiveCredential(t *testing.T) {
	tests := []struct {
		name    string
		admin   auth.Token
		adopter auth.Token
		expect  func(t *testing.T, credential auth.Credential, ok bool)
	}{
		{
			name:    "admin_preferred_when_both_present",
			admin:   "admin-token",
			adopter: "adopter-token",
			expect: func(t *testing.T, credential auth.Credential, ok bool) {
				assert.True(t, ok)
				assert.Equal(t, auth.Credential{Role: auth.RoleAdmin, Token: "admin-token"}, credential)
			},
		},
		{
			name:  "admin_only",
			admin: "admin-token",
			expect: func(t *testing.T, credential auth.Credential, ok bool) {
				assert.True(t, ok)
				assert.Equal(t, auth.RoleAdmin, credential.Role)
			},
		},
		{
			name:    "adopter_only",
			adopter: "adopter-token",
			expect: func(t *testing.T, credential auth.Credential, ok bool) {
				assert.True(t, ok)
				assert.Equal(t, auth.Credential{Role: auth.RoleAdopter, Token: "adopter-token"}, credential)
			},
		},
		{
			name: "none",
			expect: func(t *testing.T, _ auth.Credential, ok bool) {
				assert.False(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credential, ok := auth.ResolveActiveCredential(tt.admin, tt.adopter)
			tt.expect(t, credential, ok)
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	ctx := context.Background()

	store := auth.NewMemoryStore()
	require.NoError(t, store.Set(ctx, auth.AdopterTokenKey, "adopter-token"))

	admin, adopter, err := auth.LoadCredentials(ctx, store)
	require.NoError(t, err)
	assert.Empty(t, admin)
	assert.Equal(t, auth.Token("adopter-token"), adopter)

	ctrl := gomock.NewController(t)
	failing := authmock.NewCredentialStore(ctrl)
	failing.EXPECT().Get(gomock.Any(), auth.AdminTokenKey).Return(auth.Token(""), false, errors.New("disk failure"))

	_, _, err = auth.LoadCredentials(ctx, failing)
	assert.ErrorContains(t, err, "disk failure")
}

func TestIdentityContext(t *testing.T) {
	_, ok := auth.IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := auth.WithIdentity(context.Background(), auth.Identity{Role: auth.RoleAdopter, Subject: "3"})
	identity, ok := auth.IdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, auth.Identity{Role: auth.RoleAdopter, Subject: "3"}, identity)
}

func TestRole(t *testing.T) {
	role, err := auth.ParseRole("Admin")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, role)
	assert.Equal(t, auth.AdminTokenKey, role.TokenKey())
	assert.Equal(t, "/admin/login", role.LoginPath())

	assert.Equal(t, auth.AdopterTokenKey, auth.RoleAdopter.TokenKey())
	assert.Equal(t, "/login", auth.RoleAdopter.LoginPath())
	assert.Equal(t, "/login", auth.Role("").LoginPath())

	_, err = auth.ParseRole("admin")
	assert.Error(t, err)
}
