package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComplaintModel mirrors the 'complaints' table.
type ComplaintModel struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	Code            string `gorm:"type:varchar(30);not null;index"`
	CreatedAt       time.Time
	ResolvedAt      *time.Time
	FullName        string          `gorm:"type:varchar(200);not null"`
	DNI             string          `gorm:"column:dni;type:varchar(20);not null"`
	Phone           string          `gorm:"type:varchar(30);not null"`
	Email           string          `gorm:"type:varchar(100);not null"`
	Address         string          `gorm:"type:varchar(255);not null"`
	GoodType        string          `gorm:"type:varchar(20);not null"`
	ClaimedAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	GoodDescription string          `gorm:"type:text"`
	Type            string          `gorm:"type:varchar(20);not null"`
	ProblemDetail   string          `gorm:"type:text;not null"`
	ConsumerRequest string          `gorm:"type:text;not null"`
	Resolved        bool            `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}
