// Package authtest mints backend-like tokens for tests.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/adoption-portal/internal/auth"
)

var signingKey = []byte("authtest-signing-key")

func Token(t testing.TB, role auth.Role, subject string, expiresAt time.Time) auth.Token {
	t.Helper()

	return SignedToken(t, jwt.MapClaims{
		"sub":      subject,
		"username": "user-" + subject,
		"role":     string(role),
		"exp":      expiresAt.Unix(),
	})
}

func ValidToken(t testing.TB, role auth.Role, subject string) auth.Token {
	t.Helper()
	return Token(t, role, subject, time.Now().Add(time.Hour))
}

func SignedToken(t testing.TB, claims jwt.MapClaims) auth.Token {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return auth.Token(token)
}
