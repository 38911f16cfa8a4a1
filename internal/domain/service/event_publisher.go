package service

import (
	"context"

	"geekstore/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent hands a mail event over for asynchronous delivery
	PublishMailEvent(ctx context.Context, event *entity.MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// MailEventHandler consumes mail events on the receiving side of a publisher.
type MailEventHandler interface {
	HandleMailEvent(ctx context.Context, event *entity.MailEvent) error
}
