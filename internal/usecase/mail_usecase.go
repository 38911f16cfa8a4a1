package usecase

import (
	"context"

	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrUnrenderableMail marks events that no retry can deliver, such as an unknown template.
var ErrUnrenderableMail = errors.New("mail event cannot be rendered")

// MailUsecase renders and sends mail events. It is the consumer side of the mail pipeline.
type MailUsecase interface {
	service.MailEventHandler
}

// MaintenanceUsecase groups periodic housekeeping jobs.
type MaintenanceUsecase interface {
	// PurgeExpiredTokens deletes unconfirmed expired confirmation tokens and expired recovery codes.
	PurgeExpiredTokens(ctx context.Context) (confirmations, recoveryCodes int64, err error)
}
