package mailslurp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sendgrid/rest"
)

// DefaultBaseURL is the public MailSlurp API endpoint.
const DefaultBaseURL = "https://api.mailslurp.com"

const (
	opInboxExists      = "inbox exists"
	opUploadAttachment = "upload attachment"
	opSendAndConfirm   = "send and confirm"
)

// Client is the subset of the MailSlurp API the transport needs.
type Client interface {
	DoesInboxExist(ctx context.Context, emailAddress string) (*InboxExists, error)
	UploadAttachment(ctx context.Context, opts UploadAttachmentOptions) ([]string, error)
	SendEmailAndConfirm(ctx context.Context, inboxID string, opts SendEmailOptions) (*SentEmail, error)
}

// APIClient talks to the MailSlurp REST API with a single API key.
type APIClient struct {
	rest    *rest.Client
	baseURL string
	apiKey  string
}

// ClientOption configures an APIClient.
type ClientOption func(*APIClient)

// WithAPIBaseURL overrides DefaultBaseURL.
func WithAPIBaseURL(baseURL string) ClientOption {
	return func(c *APIClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithAPIHTTPClient sets the HTTP client used for requests.
func WithAPIHTTPClient(hc *http.Client) ClientOption {
	return func(c *APIClient) {
		if hc != nil {
			c.rest = &rest.Client{HTTPClient: hc}
		}
	}
}

// NewAPIClient creates a client authenticating every call with apiKey.
func NewAPIClient(apiKey string, opts ...ClientOption) *APIClient {
	c := &APIClient{
		rest:    rest.DefaultClient,
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DoesInboxExist reports whether a mailbox with the given address exists.
func (c *APIClient) DoesInboxExist(ctx context.Context, emailAddress string) (*InboxExists, error) {
	var out InboxExists
	query := map[string]string{"emailAddress": emailAddress}
	if err := c.do(ctx, opInboxExists, rest.Get, "/inboxes/exists", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAttachment uploads base64 content and returns the attachment ids.
func (c *APIClient) UploadAttachment(ctx context.Context, opts UploadAttachmentOptions) ([]string, error) {
	var ids []string
	if err := c.do(ctx, opUploadAttachment, rest.Post, "/attachments", nil, opts, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SendEmailAndConfirm sends from inboxID and blocks until MailSlurp confirms the send.
// A confirmed send never fails on decoding: when the body does not match SentEmail,
// only Raw is populated.
func (c *APIClient) SendEmailAndConfirm(ctx context.Context, inboxID string, opts SendEmailOptions) (*SentEmail, error) {
	var raw json.RawMessage
	path := "/inboxes/" + url.PathEscape(inboxID) + "/confirm"
	if err := c.do(ctx, opSendAndConfirm, rest.Post, path, nil, opts, &raw); err != nil {
		return nil, err
	}

	var out SentEmail
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			out = SentEmail{}
		}
	}
	out.Raw = raw
	return &out, nil
}

func (c *APIClient) do(ctx context.Context, op string, method rest.Method, path string, query map[string]string, in, out any) error {
	req := rest.Request{
		Method:  method,
		BaseURL: c.baseURL + path,
		Headers: map[string]string{
			"x-api-key": c.apiKey,
			"Accept":    "application/json",
		},
		QueryParams: query,
	}

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("mailslurp: %s: encode request: %w", op, err)
		}
		req.Body = body
		req.Headers["Content-Type"] = "application/json"
	}

	resp, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("mailslurp: %s: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: resp.Body}
	}

	if out == nil || strings.TrimSpace(resp.Body) == "" {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = json.RawMessage(resp.Body)
		return nil
	}
	if err := json.Unmarshal([]byte(resp.Body), out); err != nil {
		return errors.Join(ErrDecodeFailed, fmt.Errorf("%s: %w", op, err))
	}
	return nil
}
