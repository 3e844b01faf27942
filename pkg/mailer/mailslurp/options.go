package mailslurp

import (
	"log/slog"
	"net/http"
)

type options struct {
	client     Client
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
}

// Option configures a Sender.
type Option func(*options)

// WithLogger sets the logger for inbox checks, uploads and sends.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClient replaces the API client. WithBaseURL and WithHTTPClient are ignored when set.
func WithClient(c Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithBaseURL points the default API client at another endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client of the default API client.
// Timeouts are configured on it; the transport sets none of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}
