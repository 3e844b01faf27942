package mailslurp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every construction-time config error.
	ErrInvalidConfig = errors.New("mailslurp: invalid config")

	ErrMissingInbox       = fmt.Errorf("%w: missing inbox", ErrInvalidConfig)
	ErrMissingAPIKey      = fmt.Errorf("%w: missing api key", ErrInvalidConfig)
	ErrMissingSenderEmail = fmt.Errorf("%w: missing sender email", ErrInvalidConfig)

	// ErrInboxNotFound indicates the configured sender mailbox does not exist.
	ErrInboxNotFound = errors.New("mailslurp: inbox missing")

	// ErrRequestFailed is matched by every non-2xx API response.
	ErrRequestFailed = errors.New("mailslurp: request failed")

	// ErrDecodeFailed indicates an API response body could not be decoded.
	ErrDecodeFailed = errors.New("mailslurp: failed to decode response")
)

// APIError describes a non-2xx response from the MailSlurp API.
type APIError struct {
	Op         string
	Body       string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("mailslurp: %s: status=%d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("mailslurp: %s: status=%d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return ErrRequestFailed
}
