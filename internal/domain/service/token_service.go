package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens. The subject carries the email.
type Claims struct {
	UserID uint64   `json:"uid"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID uint64, email string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured lifetime of access tokens.
	GetTokenDuration() time.Duration
}
