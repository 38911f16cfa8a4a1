package entity

import "time"

// ConfirmationToken is the single-use credential mailed after registration.
type ConfirmationToken struct {
	ID          uint64
	Token       string
	UserID      uint64
	CreatedAt   time.Time
	ExpiresAt   time.Time
	ConfirmedAt *time.Time
}

// IsConfirmed reports whether the token was already used.
func (t *ConfirmationToken) IsConfirmed() bool {
	return t.ConfirmedAt != nil
}

// IsExpired reports whether the token is past its expiry at now.
func (t *ConfirmationToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// PasswordResetToken holds the 6-digit recovery code. A user has at most one.
type PasswordResetToken struct {
	ID             uint64
	Code           string
	UserID         uint64
	ExpirationTime time.Time
}

// IsExpired reports whether the code is past its expiry at now.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return t.ExpirationTime.Before(now)
}
