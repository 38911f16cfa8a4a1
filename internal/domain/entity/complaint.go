package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ComplaintCodePlaceholder is stored until the id is known.
const ComplaintCodePlaceholder = "GENERANDO..."

// GoodType tells whether the complaint is about a product or a service.
type GoodType string

const (
	GoodTypeProduct GoodType = "PRODUCTO"
	GoodTypeService GoodType = "SERVICIO"
)

// ComplaintType distinguishes a claim about the good from a grievance about service.
type ComplaintType string

const (
	ComplaintTypeClaim     ComplaintType = "RECLAMO"
	ComplaintTypeGrievance ComplaintType = "QUEJA"
)

// Complaint is an entry of the consumer complaints book (libro de reclamaciones).
type Complaint struct {
	ID              uint64
	Code            string
	CreatedAt       time.Time
	ResolvedAt      *time.Time
	FullName        string
	DNI             string
	Phone           string
	Email           string
	Address         string
	GoodType        GoodType
	ClaimedAmount   decimal.Decimal
	GoodDescription string
	Type            ComplaintType
	ProblemDetail   string
	ConsumerRequest string
	Resolved        bool
}

// ComplaintCode builds the public tracking code, e.g. REC-2025-0042.
func ComplaintCode(year int, id uint64) string {
	return fmt.Sprintf("REC-%d-%04d", year, id)
}

// SetResolved flips the resolved flag and keeps ResolvedAt consistent with it.
func (c *Complaint) SetResolved(resolved bool, now time.Time) {
	c.Resolved = resolved
	if resolved {
		c.ResolvedAt = &now
	} else {
		c.ResolvedAt = nil
	}
}
