package postgres

import (
	"context"

	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{db: db}
}

func (repo *complaintRepository) CreateComplaint(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).Create(complaintM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required complaint information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	complaint.ID = complaintM.ID
	complaint.CreatedAt = complaintM.CreatedAt

	return nil
}

func (repo *complaintRepository) UpdateComplaint(ctx context.Context, complaint *entity.Complaint) error {
	if err := repo.db.WithContext(ctx).Save(fromComplaintDomain(complaint)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update complaint")
	}

	return nil
}

func (repo *complaintRepository) FindComplaintByID(ctx context.Context, id uint64) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel
	if err := repo.db.WithContext(ctx).First(&complaintM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by id")
	}

	return toComplaintDomain(&complaintM), nil
}

func (repo *complaintRepository) ListComplaints(ctx context.Context) ([]*entity.Complaint, error) {
	var complaintModels []*model.ComplaintModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints, nil
}

// --- Mapper Functions ---

func toComplaintDomain(data *model.ComplaintModel) *entity.Complaint {
	return &entity.Complaint{
		ID:              data.ID,
		Code:            data.Code,
		CreatedAt:       data.CreatedAt,
		ResolvedAt:      data.ResolvedAt,
		FullName:        data.FullName,
		DNI:             data.DNI,
		Phone:           data.Phone,
		Email:           data.Email,
		Address:         data.Address,
		GoodType:        entity.GoodType(data.GoodType),
		ClaimedAmount:   data.ClaimedAmount,
		GoodDescription: data.GoodDescription,
		Type:            entity.ComplaintType(data.Type),
		ProblemDetail:   data.ProblemDetail,
		ConsumerRequest: data.ConsumerRequest,
		Resolved:        data.Resolved,
	}
}

func fromComplaintDomain(data *entity.Complaint) *model.ComplaintModel {
	return &model.ComplaintModel{
		ID:              data.ID,
		Code:            data.Code,
		CreatedAt:       data.CreatedAt,
		ResolvedAt:      data.ResolvedAt,
		FullName:        data.FullName,
		DNI:             data.DNI,
		Phone:           data.Phone,
		Email:           data.Email,
		Address:         data.Address,
		GoodType:        string(data.GoodType),
		ClaimedAmount:   data.ClaimedAmount,
		GoodDescription: data.GoodDescription,
		Type:            string(data.Type),
		ProblemDetail:   data.ProblemDetail,
		ConsumerRequest: data.ConsumerRequest,
		Resolved:        data.Resolved,
	}
}
