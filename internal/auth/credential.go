package auth

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnauthorized = errors.New("unauthorized")

type (
	Credential struct {
		Role  Role
		Token Token
	}

	Identity struct {
		Role    Role
		Subject string
	}

	contextKey int
)

const (
	identityContextKey contextKey = iota
	navigationContextKey
	browserContextKey
)

// ResolveActiveCredential applies the credential precedence: the administrator token when
// present, otherwise the adopter token.
func ResolveActiveCredential(admin, adopter Token) (Credential, bool) {
	switch {
	case admin != "":
		return Credential{Role: RoleAdmin, Token: admin}, true
	case adopter != "":
		return Credential{Role: RoleAdopter, Token: adopter}, true
	default:
		return Credential{}, false
	}
}

// LoadCredentials reads both role tokens. An absent token is returned empty.
func LoadCredentials(ctx context.Context, store CredentialStore) (admin, adopter Token, err error) {
	admin, _, err = store.Get(ctx, AdminTokenKey)
	if err != nil {
		return "", "", fmt.Errorf("get %s: %w", AdminTokenKey, err)
	}

	adopter, _, err = store.Get(ctx, AdopterTokenKey)
	if err != nil {
		return "", "", fmt.Errorf("get %s: %w", AdopterTokenKey, err)
	}

	return admin, adopter, nil
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}
