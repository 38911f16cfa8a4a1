package usecase

import (
	"context"

	"geekstore/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ComplaintInput is a consumer complaint as filed from the public form.
type ComplaintInput struct {
	FullName        string
	DNI             string
	Phone           string
	Email           string
	Address         string
	GoodType        string
	ClaimedAmount   decimal.Decimal
	GoodDescription string
	Type            string
	ProblemDetail   string
	ConsumerRequest string
}

// ComplaintUsecase manages the complaints book.
type ComplaintUsecase interface {
	// FileComplaint stores the complaint and assigns its REC-<year>-<id> code.
	FileComplaint(ctx context.Context, input *ComplaintInput) (*entity.Complaint, error)
	ListComplaints(ctx context.Context) ([]*entity.Complaint, error)
	SetResolved(ctx context.Context, id uint64, resolved bool) (*entity.Complaint, error)
}
