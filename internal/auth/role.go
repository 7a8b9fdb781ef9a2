package auth

import (
	"fmt"
)

type (
	Role  string
	Token string
	Key   string
)

const (
	RoleAdmin   Role = "Admin"
	RoleAdopter Role = "Adopter"

	AdopterTokenKey Key = "access_token"
	AdminTokenKey   Key = "adminToken"

	AdopterLoginPath = "/login"
	AdminLoginPath   = "/admin/login"
)

// Roles is ordered by credential precedence: an administrator token wins over an adopter one.
var Roles = []Role{RoleAdmin, RoleAdopter}

func ParseRole(value string) (Role, error) {
	role := Role(value)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", value)
	}

	return role, nil
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAdopter
}

func (r Role) TokenKey() Key {
	if r == RoleAdmin {
		return AdminTokenKey
	}

	return AdopterTokenKey
}

// LoginPath falls back to the adopter login page for anything but an administrator.
func (r Role) LoginPath() string {
	if r == RoleAdmin {
		return AdminLoginPath
	}

	return AdopterLoginPath
}

func (r Role) String() string {
	return string(r)
}
