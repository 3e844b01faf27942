// Package resend implements mailer.Sender using the Resend API.
package resend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/slurpmail/pkg/logger"
	"github.com/dmitrymomot/slurpmail/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	logger *slog.Logger
	config Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithLogger sets the logger for delivery events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{
		client: resend.NewClient(cfg.APIKey),
		logger: logger.NewNope(),
		config: cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("transport", "resend"))
	return s
}

// Send implements mailer.Sender.
// FormatBoth delivers HTML and text in one message; the result is keyed by the email's format.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (mailer.Result, error) {
	req, err := s.buildRequest(email)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", err)
	}

	format := email.Format
	if format == "" {
		format = mailer.FormatHTML
	}
	s.logger.InfoContext(ctx, "email accepted", slog.String("id", resp.Id), slog.String("format", string(format)))

	return mailer.Result{format: resp}, nil
}

func (s *Sender) buildRequest(email *mailer.Email) (*resend.SendEmailRequest, error) {
	from := mailer.Address{Email: s.config.SenderEmail, Name: s.config.SenderName}
	if first, ok := email.From.First(); ok {
		from = first
	}

	req := &resend.SendEmailRequest{
		From:    recipient(from),
		To:      recipients(email.To),
		Subject: email.Subject,
		Cc:      recipients(email.CC),
		Bcc:     recipients(email.BCC),
		Headers: email.Headers,
	}
	if replyTo, ok := email.ReplyTo.First(); ok {
		req.ReplyTo = recipient(replyTo)
	}

	switch email.Format {
	case mailer.FormatText:
		req.Text = email.Text
	case mailer.FormatBoth:
		req.Html = email.HTML
		req.Text = email.Text
	default:
		req.Html = email.HTML
	}

	attachments, err := convertAttachments(email.Attachments)
	if err != nil {
		return nil, fmt.Errorf("resend: %w", err)
	}
	if len(attachments) > 0 {
		req.Attachments = attachments
	}

	return req, nil
}

// recipient leaves addresses without a display name bare.
func recipient(a mailer.Address) string {
	if a.Name == "" {
		return a.Email
	}
	return a.String()
}

func recipients(as mailer.Addresses) []string {
	if len(as) == 0 {
		return nil
	}
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = recipient(a)
	}
	return out
}

func convertAttachments(attachments []mailer.Attachment) ([]*resend.Attachment, error) {
	result := make([]*resend.Attachment, 0, len(attachments))
	for _, a := range attachments {
		content, err := a.Content()
		if err != nil {
			return nil, err
		}
		if len(content) == 0 {
			continue
		}
		result = append(result, &resend.Attachment{
			Filename:    a.Filename,
			Content:     content,
			ContentType: a.Mimetype,
			ContentId:   a.ContentID,
		})
	}
	return result, nil
}
