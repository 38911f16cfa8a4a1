package model

import "time"

// ConfirmationTokenModel mirrors the 'confirmation_tokens' table.
type ConfirmationTokenModel struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement"`
	Token       string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID      uint64     `gorm:"not null;index"`
	User        *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	ExpiresAt   time.Time `gorm:"not null;index"`
	ConfirmedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConfirmationTokenModel) TableName() string {
	return "confirmation_tokens"
}

// PasswordResetTokenModel mirrors the 'password_reset_tokens' table.
// Codes are six digits and may collide across users, so the index is not unique.
type PasswordResetTokenModel struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement"`
	Code           string     `gorm:"type:varchar(6);not null;index"`
	UserID         uint64     `gorm:"not null;index"`
	User           *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpirationTime time.Time  `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
