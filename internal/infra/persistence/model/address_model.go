package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         uint64     `gorm:"primaryKey;autoIncrement"`
	UserID     uint64     `gorm:"not null;index"`
	User       *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Alias      string     `gorm:"type:varchar(50);not null"`
	Department string     `gorm:"type:varchar(100);not null"`
	Province   string     `gorm:"type:varchar(100);not null"`
	District   string     `gorm:"type:varchar(100);not null"`
	Street     string     `gorm:"type:varchar(255);not null"`
	Reference  string     `gorm:"type:varchar(255)"`
	PostalCode string     `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
