package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	domainerrors "geekstore/internal/domain/errors"
	"geekstore/internal/domain/repository"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// complaintService implements the ComplaintUsecase interface.
type complaintService struct {
	txManager     repository.TransactionManager
	complaintRepo repository.ComplaintRepository
	now           func() time.Time
	logger        *slog.Logger
}

// ComplaintServiceParams holds dependencies for ComplaintService, injected by Fx.
type ComplaintServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ComplaintRepo repository.ComplaintRepository
	Logger        *slog.Logger
}

// NewComplaintService is the constructor for complaintService.
func NewComplaintService(params ComplaintServiceParams) usecase.ComplaintUsecase {
	return &complaintService{
		txManager:     params.TxManager,
		complaintRepo: params.ComplaintRepo,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *complaintService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FileComplaint inserts the complaint and then stamps its public code, which needs the id.
func (srv *complaintService) FileComplaint(ctx context.Context, input *usecase.ComplaintInput) (*entity.Complaint, error) {
	now := srv.now()
	complaint := &entity.Complaint{
		Code:            entity.ComplaintCodePlaceholder,
		CreatedAt:       now,
		FullName:        input.FullName,
		DNI:             input.DNI,
		Phone:           input.Phone,
		Email:           input.Email,
		Address:         input.Address,
		GoodType:        entity.GoodType(input.GoodType),
		ClaimedAmount:   entity.RoundMoney(input.ClaimedAmount),
		GoodDescription: input.GoodDescription,
		Type:            entity.ComplaintType(input.Type),
		ProblemDetail:   input.ProblemDetail,
		ConsumerRequest: input.ConsumerRequest,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		complaintRepo := repoFactory.NewComplaintRepository()

		if err := complaintRepo.CreateComplaint(ctx, complaint); err != nil {
			return errors.Wrap(err, "failed to insert complaint")
		}

		complaint.Code = entity.ComplaintCode(now.Year(), complaint.ID)

		if err := complaintRepo.UpdateComplaint(ctx, complaint); err != nil {
			return errors.Wrap(err, "failed to assign complaint code")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to file complaint")
	}

	srv.log(ctx).Info("Complaint filed", slog.String("code", complaint.Code), slog.String("type", string(complaint.Type)))

	return complaint, nil
}

func (srv *complaintService) ListComplaints(ctx context.Context) ([]*entity.Complaint, error) {
	complaints, err := srv.complaintRepo.ListComplaints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

func (srv *complaintService) SetResolved(ctx context.Context, id uint64, resolved bool) (*entity.Complaint, error) {
	var updated *entity.Complaint
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		complaintRepo := repoFactory.NewComplaintRepository()

		complaint, err := complaintRepo.FindComplaintByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrComplaintNotFound) {
				message := fmt.Sprintf("Reclamo no encontrado con id: %d", id)

				return errors.Wrap(domainerrors.ErrComplaintNotFound.WithMessage(message), "complaint not found")
			}

			return errors.Wrap(err, "failed to find complaint")
		}

		complaint.SetResolved(resolved, srv.now())
		if err := complaintRepo.UpdateComplaint(ctx, complaint); err != nil {
			return errors.Wrap(err, "failed to update complaint")
		}

		updated = complaint

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update complaint")
	}

	srv.log(ctx).Info("Complaint resolution changed", slog.Uint64("complaintID", id), slog.Bool("resolved", resolved))

	return updated, nil
}
