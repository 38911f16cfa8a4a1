package impl

import (
	"context"
	"log/slog"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"
	"geekstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mailService implements the MailUsecase interface.
type mailService struct {
	renderer service.MailRenderer
	mailer   service.Mailer
	logger   *slog.Logger
}

// MailServiceParams holds dependencies for MailService, injected by Fx.
type MailServiceParams struct {
	fx.In

	Renderer service.MailRenderer
	Mailer   service.Mailer
	Logger   *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(params MailServiceParams) usecase.MailUsecase {
	return &mailService{
		renderer: params.Renderer,
		mailer:   params.Mailer,
		logger:   params.Logger,
	}
}

// HandleMailEvent renders the event's template and sends it.
func (srv *mailService) HandleMailEvent(ctx context.Context, event *entity.MailEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("type", string(event.Type)),
		slog.String("to", event.To),
	)
	if event.RequestID != "" {
		logger = logger.With(slog.String("request_id", event.RequestID))
	}

	mail, err := srv.renderer.Render(event)
	if err != nil {
		logger.Error("Failed to render mail", slog.Any("error", err))

		return errors.Wrapf(usecase.ErrUnrenderableMail, "render %s: %v", event.Type, err)
	}

	if err := srv.mailer.Send(ctx, mail); err != nil {
		logger.Error("Failed to send mail", slog.Any("error", err))

		return errors.Wrap(err, "failed to send mail")
	}

	logger.Info("Mail sent", slog.String("subject", mail.Subject))

	return nil
}
