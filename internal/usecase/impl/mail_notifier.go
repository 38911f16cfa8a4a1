// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "geekstore/internal/delivery/context"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"
)

// mailNotifier hands mail events to the publisher. A failed publish is logged and
// never reaches the caller: the business operation already committed.
type mailNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newMailNotifier(publisher service.EventPublisher, logger *slog.Logger) *mailNotifier {
	return &mailNotifier{publisher: publisher, logger: logger}
}

func (n *mailNotifier) notify(ctx context.Context, event *entity.MailEvent) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	if n.publisher == nil {
		logger.Warn("Mail publisher not configured, dropping mail event", slog.String("type", string(event.Type)))

		return
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := n.publisher.PublishMailEvent(ctx, event); err != nil {
		logger.Error("Failed to publish mail event",
			slog.String("type", string(event.Type)),
			slog.String("to", event.To),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Mail event published", slog.String("type", string(event.Type)), slog.String("to", event.To))
}

func (n *mailNotifier) accountVerification(ctx context.Context, user *entity.User, token string) {
	n.notify(ctx, &entity.MailEvent{
		Type:  entity.MailEventAccountVerification,
		To:    user.Email,
		Name:  user.FirstName,
		Token: token,
	})
}

func (n *mailNotifier) recoveryCode(ctx context.Context, user *entity.User, code string) {
	n.notify(ctx, &entity.MailEvent{
		Type: entity.MailEventRecoveryCode,
		To:   user.Email,
		Name: user.FirstName,
		Code: code,
	})
}

func (n *mailNotifier) orderConfirmation(ctx context.Context, order *entity.Order) {
	n.notify(ctx, &entity.MailEvent{
		Type:  entity.MailEventOrderConfirmation,
		To:    order.UserEmail,
		Name:  order.UserName,
		Order: order,
	})
}

func (n *mailNotifier) orderStatusUpdate(ctx context.Context, order *entity.Order) {
	n.notify(ctx, &entity.MailEvent{
		Type:  entity.MailEventOrderStatusUpdate,
		To:    order.UserEmail,
		Name:  order.UserName,
		Order: order,
	})
}
