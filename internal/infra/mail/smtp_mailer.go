package mail

import (
	"context"
	"log/slog"
	"net"
	"time"

	"geekstore/config"
	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

const (
	defaultSMTPPort    = 587
	defaultSMTPTimeout = 15 * time.Second
)

type smtpMailer struct {
	host      string
	port      int
	from      string
	username  string
	password  string
	tlsPolicy gomail.TLSPolicy
	timeout   time.Duration
	logger    *slog.Logger
}

// MailerParams holds dependencies for the SMTP mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSMTPMailer creates a Mailer that relays through the configured SMTP server
func NewSMTPMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("mail.smtp.host is required")
	}
	if cfg.From == "" {
		return nil, errors.New("mail.from is required")
	}
	if err := gomail.NewMsg().From(cfg.From); err != nil {
		return nil, errors.Wrap(err, "mail.from is not a valid address")
	}

	port := cfg.SMTP.Port
	if port == 0 {
		port = defaultSMTPPort
	}
	timeout := cfg.SMTP.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	tlsPolicy := gomail.TLSOpportunistic
	if cfg.SMTP.RequireTLS {
		tlsPolicy = gomail.TLSMandatory
	}

	return &smtpMailer{
		host:      cfg.SMTP.Host,
		port:      port,
		from:      cfg.From,
		username:  cfg.SMTP.Username,
		password:  cfg.SMTP.Password,
		tlsPolicy: tlsPolicy,
		timeout:   timeout,
		logger:    params.Logger,
	}, nil
}

// Send delivers one HTML message. ctx bounds the whole SMTP session.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	if mail == nil || mail.To == "" {
		return errors.New("mail recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	msg, err := m.buildMessage(mail)
	if err != nil {
		return err
	}

	client, err := m.newClient(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrapf(err, "smtp send to %s", mail.To)
	}

	m.logger.Info("Mail sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}

func (m *smtpMailer) buildMessage(mail *service.Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender")
	}
	if err := msg.To(mail.To); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient %s", mail.To)
	}
	msg.Subject(mail.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextHTML, mail.HTML)

	return msg, nil
}

func (m *smtpMailer) newClient(ctx context.Context) (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(m.port),
		gomail.WithTimeout(m.timeout),
		gomail.WithTLSPolicy(m.tlsPolicy),
		gomail.WithDialContextFunc(m.dialer(ctx)),
	}
	// Relays such as MailHog accept unauthenticated mail
	if m.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.username),
			gomail.WithPassword(m.password),
		)
	}

	return gomail.NewClient(m.host, opts...)
}

// dialer bounds the whole session by sendCtx and the timeout, not only the TCP connect.
func (m *smtpMailer) dialer(sendCtx context.Context) gomail.DialContextFunc {
	return func(dialCtx context.Context, network, address string) (net.Conn, error) {
		var d net.Dialer
		conn, err := d.DialContext(dialCtx, network, address)
		if err != nil {
			return nil, err
		}

		deadline := time.Now().Add(m.timeout)
		if ctxDeadline, ok := sendCtx.Deadline(); ok && ctxDeadline.Before(deadline) {
			deadline = ctxDeadline
		}
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()

			return nil, err
		}

		stop := context.AfterFunc(sendCtx, func() { _ = conn.Close() })

		return &sessionConn{Conn: conn, stop: stop}, nil
	}
}

// sessionConn releases the cancellation hook when go-mail closes the connection.
type sessionConn struct {
	net.Conn
	stop func() bool
}

func (c *sessionConn) Close() error {
	c.stop()

	return c.Conn.Close()
}
