package service

import (
	"context"

	"geekstore/internal/domain/entity"
)

// Mail is a rendered HTML message.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers rendered mail through a relay.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}

// MailRenderer turns a mail event into a ready to send message.
type MailRenderer interface {
	Render(event *entity.MailEvent) (*Mail, error)
}
