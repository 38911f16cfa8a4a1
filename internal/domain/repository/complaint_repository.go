package repository

import (
	"context"

	"geekstore/internal/domain/entity"
	"geekstore/internal/errors"
)

// ErrComplaintNotFound is returned when a complaint is not found.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintRepository defines persistence of the complaints book.
type ComplaintRepository interface {
	CreateComplaint(ctx context.Context, complaint *entity.Complaint) error
	UpdateComplaint(ctx context.Context, complaint *entity.Complaint) error
	FindComplaintByID(ctx context.Context, id uint64) (*entity.Complaint, error)
	// ListComplaints returns complaints by id descending.
	ListComplaints(ctx context.Context) ([]*entity.Complaint, error)
}
