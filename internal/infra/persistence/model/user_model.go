package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	FirstName    string     `gorm:"type:varchar(100);not null"`
	LastName     string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(255)"`
	Role         string     `gorm:"type:varchar(20);not null"`
	Enabled      bool       `gorm:"not null"`
	AuthProvider string     `gorm:"type:varchar(20);not null"`
	DNI          *string    `gorm:"column:dni;type:varchar(20);uniqueIndex"`
	Phone        string     `gorm:"type:varchar(30)"`
	Gender       string     `gorm:"type:varchar(20)"`
	BirthDate    *time.Time `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
