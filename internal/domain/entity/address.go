// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Address is a saved shipping address of a user.
type Address struct {
	ID         uint64
	UserID     uint64
	Alias      string // e.g. "Casa", "Oficina"
	Department string
	Province   string
	District   string
	Street     string
	Reference  string
	PostalCode string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOwnedBy reports whether the address belongs to userID.
func (a *Address) IsOwnedBy(userID uint64) bool {
	return a.UserID == userID
}
