package mailer

import "context"

// Sender is the capability a mail transport provides to the pipeline.
type Sender interface {
	// Send delivers an email message and returns the provider response
	// keyed by the format it was delivered in.
	// Implementations must not modify email.
	Send(ctx context.Context, email *Email) (Result, error)
}
