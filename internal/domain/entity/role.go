package entity

import "strings"

// Role is the authorization level of an account. Every account holds exactly one.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

func (r Role) String() string {
	return string(r)
}

// ParseRole maps admin input such as "ADMIN" or "ROLE_ADMIN" to a Role.
// Anything that is not an admin role becomes RoleUser.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN", string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Roles is the roles claim of an access token.
type Roles []Role

func (rs Roles) ToStrings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}
