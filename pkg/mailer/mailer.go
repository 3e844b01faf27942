package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/slurpmail/pkg/logger"
)

// Mailer validates outbound emails and hands them to a Sender.
type Mailer struct {
	sender Sender
	logger *slog.Logger
	config Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for dispatch events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer with the given sender.
func New(sender Sender, cfg Config, opts ...Option) *Mailer {
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = FormatHTML
	}

	m := &Mailer{
		sender: sender,
		logger: logger.NewNope(),
		config: cfg,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send validates the email and delivers it through the configured sender.
// Charset and format defaults are applied to a copy; email itself is left untouched.
// FormatBoth requires an HTML body; the text body is optional.
func (m *Mailer) Send(ctx context.Context, email *Email) (Result, error) {
	if email == nil || len(email.To) == 0 {
		return nil, ErrNoRecipient
	}

	msg := m.withDefaults(email)
	if !msg.Format.Valid() {
		return nil, ErrInvalidFormat
	}
	if msg.Subject == "" {
		return nil, ErrNoSubject
	}
	if msg.Body(msg.Format) == "" {
		return nil, ErrNoContent
	}

	ctx = logger.WithSendID(ctx, uuid.NewString())
	log := m.logger.With(slog.String("format", string(msg.Format)))

	result, err := m.sender.Send(ctx, msg)
	if err != nil {
		log.ErrorContext(ctx, "email delivery failed",
			slog.Int("recipients", len(msg.To)+len(msg.CC)+len(msg.BCC)),
			slog.String("error", err.Error()),
		)
		return nil, errors.Join(ErrSendFailed, err)
	}

	log.InfoContext(ctx, "email sent",
		slog.Int("recipients", len(msg.To)+len(msg.CC)+len(msg.BCC)),
		slog.Int("attachments", len(msg.Attachments)),
	)
	return result, nil
}

func (m *Mailer) withDefaults(email *Email) *Email {
	msg := *email
	if msg.Charset == "" {
		msg.Charset = m.config.Charset
	}
	if msg.Format == "" {
		msg.Format = m.config.DefaultFormat
	}
	return &msg
}
