// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// AuthProvider tells how an account authenticates.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "LOCAL"
	AuthProviderGoogle AuthProvider = "GOOGLE"
)

// User is a store account. Local accounts stay disabled until the email is confirmed.
type User struct {
	ID           uint64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // empty for Google accounts
	Role         Role
	Enabled      bool
	AuthProvider AuthProvider
	DNI          *string // national id, unique when present
	Phone        string
	Gender       string
	BirthDate    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Roles returns the user's roles for token issuing.
func (u *User) Roles() Roles {
	if u.Role == "" {
		return Roles{RoleUser}
	}

	return Roles{u.Role}
}
