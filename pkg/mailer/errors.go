package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates the body for the selected format is empty.
	// FormatText requires Text; FormatHTML and FormatBoth require HTML, since
	// single-body transports deliver HTML for both.
	ErrNoContent = errors.New("email must have content for its format")

	// ErrInvalidFormat indicates an unknown body format.
	ErrInvalidFormat = errors.New("unknown email format")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")

	// ErrAttachmentRead indicates an attachment file could not be read.
	ErrAttachmentRead = errors.New("failed to read attachment")

	// ErrInvalidMessage indicates a message file could not be decoded.
	ErrInvalidMessage = errors.New("invalid message file")
)
