package mailslurp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/slurpmail/pkg/logger"
	"github.com/dmitrymomot/slurpmail/pkg/mailer"
)

// DefaultContentType is used for attachments without a declared MIME type.
const DefaultContentType = "application/octet-stream"

// Sender implements mailer.Sender by sending from a MailSlurp inbox.
// Treat a Sender as single-owner; it keeps no state between sends.
type Sender struct {
	client Client
	logger *slog.Logger
	config Config
}

// New creates a MailSlurp sender.
// All three Config fields are required; the error matches ErrInvalidConfig otherwise.
func New(cfg Config, opts ...Option) (*Sender, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	client := o.client
	if client == nil {
		client = NewAPIClient(cfg.APIKey,
			WithAPIBaseURL(o.baseURL),
			WithAPIHTTPClient(o.httpClient),
		)
	}

	log := o.logger
	if log == nil {
		log = logger.NewNope()
	}

	return &Sender{
		client: client,
		logger: log.With(slog.String("transport", "mailslurp"), slog.String("inbox_id", cfg.InboxID)),
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
//
// The configured sender mailbox must exist, otherwise ErrInboxNotFound is returned
// before anything is uploaded. Exactly one send is made: plain text when the format
// is mailer.FormatText, HTML for everything else. API errors are returned as is.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (mailer.Result, error) {
	found, err := s.client.DoesInboxExist(ctx, s.config.SenderEmail)
	if err != nil {
		return nil, err
	}
	if found == nil || !found.Exists {
		s.logger.ErrorContext(ctx, "sender inbox does not exist", slog.String("email", s.config.SenderEmail))
		return nil, ErrInboxNotFound
	}

	opts := SendEmailOptions{
		To:      FormatAddresses(email.To),
		CC:      FormatAddresses(email.CC),
		BCC:     FormatAddresses(email.BCC),
		Subject: email.Subject,
		Charset: email.Charset,
	}

	// Only the display name is taken from the caller; the inbox address is fixed.
	if from, ok := email.From.First(); ok {
		opts.From = fmt.Sprintf("%s <%s>", from.DisplayName(), s.config.SenderEmail)
	}
	// Reply-to carries the first display name unformatted.
	if replyTo, ok := email.ReplyTo.First(); ok {
		opts.ReplyTo = replyTo.DisplayName()
	}

	for _, a := range email.Attachments {
		id, err := s.uploadAttachment(ctx, a)
		if err != nil {
			return nil, err
		}
		if id != "" {
			opts.Attachments = append(opts.Attachments, id)
		}
	}

	format := mailer.FormatHTML
	if email.Format == mailer.FormatText {
		format = mailer.FormatText
	}
	opts.IsHTML = format == mailer.FormatHTML
	opts.Body = email.Body(format)

	sent, err := s.client.SendEmailAndConfirm(ctx, s.config.InboxID, opts)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "email confirmed",
		slog.String("format", string(format)),
		slog.Int("attachments", len(opts.Attachments)),
	)

	return mailer.Result{format: sent}, nil
}

// uploadAttachment returns an empty id when the attachment has no content.
func (s *Sender) uploadAttachment(ctx context.Context, a mailer.Attachment) (string, error) {
	data, err := a.Content()
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", nil
	}

	contentType := a.Mimetype
	if contentType == "" {
		contentType = DefaultContentType
	}

	ids, err := s.client.UploadAttachment(ctx, UploadAttachmentOptions{
		Filename:       a.Filename,
		ContentType:    contentType,
		Base64Contents: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		s.logger.WarnContext(ctx, "attachment upload returned no id", slog.String("filename", a.Filename))
		return "", nil
	}

	s.logger.DebugContext(ctx, "attachment uploaded",
		slog.String("filename", a.Filename),
		slog.String("attachment_id", ids[0]),
	)
	return ids[0], nil
}

// FormatAddresses renders each entry as "Name <email>" in input order.
func FormatAddresses(addresses mailer.Addresses) []string {
	formatted := make([]string, 0, len(addresses))
	for _, a := range addresses {
		formatted = append(formatted, a.String())
	}
	return formatted
}
