package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrDecode = errors.New("token decode failed")

type Claims struct {
	Subject   string
	Username  string
	Role      Role
	ExpiresAt time.Time
}

func (c Claims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role"`
}

// Decode reads the token payload without verifying its signature. The backend remains the
// only party that trusts the claims; the portal uses them to pick a role and a login page.
func Decode(token Token) (Claims, error) {
	var claims tokenClaims
	_, _, err := jwt.NewParser().ParseUnverified(string(token), &claims)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	switch {
	case claims.Subject == "":
		return Claims{}, fmt.Errorf("%w: sub claim is missing", ErrDecode)
	case claims.ExpiresAt == nil:
		return Claims{}, fmt.Errorf("%w: exp claim is missing", ErrDecode)
	case claims.Role == "":
		return Claims{}, fmt.Errorf("%w: role claim is missing", ErrDecode)
	case !claims.Role.Valid():
		return Claims{}, fmt.Errorf("%w: unknown role %q", ErrDecode, claims.Role)
	}

	return Claims{
		Subject:   claims.Subject,
		Username:  claims.Username,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func FormatAuthorization(token Token) string {
	return "Bearer " + string(token)
}
