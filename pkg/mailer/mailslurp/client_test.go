package mailslurp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slurpmail/pkg/mailer"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestAPIClient_DoesInboxExist(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/inboxes/exists", r.URL.Path)
		require.Equal(t, "test+1@mailslurp.biz", r.URL.Query().Get("emailAddress"))
		require.Equal(t, "secret", r.Header.Get("x-api-key"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"exists":true}`)
	})

	c := NewAPIClient("secret", WithAPIBaseURL(srv.URL+"/"), WithAPIHTTPClient(srv.Client()))
	res, err := c.DoesInboxExist(context.Background(), "test+1@mailslurp.biz")

	require.NoError(t, err)
	require.True(t, res.Exists)
}

func TestAPIClient_UploadAttachment(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/attachments", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]string{
			"filename":       "a.txt",
			"contentType":    "text/plain",
			"base64Contents": "aGVsbG8=",
		}, body)

		_, _ = io.WriteString(w, `["att-1"]`)
	})

	c := NewAPIClient("secret", WithAPIBaseURL(srv.URL))
	ids, err := c.UploadAttachment(context.Background(), UploadAttachmentOptions{
		Filename:       "a.txt",
		ContentType:    "text/plain",
		Base64Contents: "aGVsbG8=",
	})

	require.NoError(t, err)
	require.Equal(t, []string{"att-1"}, ids)
}

func TestAPIClient_SendEmailAndConfirm(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/inboxes/inbox-123/confirm", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, false, body["isHTML"])
		require.Equal(t, "plain body", body["body"])
		require.NotContains(t, body, "attachments")
		require.NotContains(t, body, "replyTo")

		_, _ = io.WriteString(w, `{"id":"sent-1","inboxId":"inbox-123","to":["Alice <a@x.com>"],"isHTML":false,"sentAt":"2024-01-02T03:04:05Z"}`)
	})

	c := NewAPIClient("secret", WithAPIBaseURL(srv.URL))
	sent, err := c.SendEmailAndConfirm(context.Background(), "inbox-123", SendEmailOptions{
		To:   []string{"Alice <a@x.com>"},
		Body: "plain body",
	})

	require.NoError(t, err)
	require.Equal(t, "sent-1", sent.ID)
	require.Equal(t, "inbox-123", sent.InboxID)
	require.Equal(t, []string{"Alice <a@x.com>"}, sent.To)
	require.Equal(t, 2024, sent.SentAt.Year())
	require.JSONEq(t, `{"id":"sent-1","inboxId":"inbox-123","to":["Alice <a@x.com>"],"isHTML":false,"sentAt":"2024-01-02T03:04:05Z"}`, string(sent.Raw))
}

func TestAPIClient_SendEmailAndConfirm_UnexpectedBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "unparseable sentAt", body: `{"id":"sent-1","sentAt":"yesterday"}`},
		{name: "not json", body: `accepted`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			c := NewAPIClient("secret", WithAPIBaseURL(srv.URL))
			sent, err := c.SendEmailAndConfirm(context.Background(), "inbox-123", SendEmailOptions{Body: "hi"})

			require.NoError(t, err)
			require.Equal(t, tt.body, string(sent.Raw))
			require.Empty(t, sent.ID)
		})
	}
}

func TestAPIClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"message":"invalid api key"}`)
		})

		c := NewAPIClient("wrong", WithAPIBaseURL(srv.URL))
		_, err := c.DoesInboxExist(context.Background(), "a@x.com")

		require.ErrorIs(t, err, ErrRequestFailed)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Equal(t, opInboxExists, apiErr.Op)
		require.Contains(t, apiErr.Error(), "invalid api key")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"exists":`)
		})

		c := NewAPIClient("secret", WithAPIBaseURL(srv.URL))
		_, err := c.DoesInboxExist(context.Background(), "a@x.com")

		require.ErrorIs(t, err, ErrDecodeFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"exists":true}`)
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewAPIClient("secret", WithAPIBaseURL(srv.URL))
		_, err := c.DoesInboxExist(ctx, "a@x.com")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSender_Send_OverHTTP(t *testing.T) {
	t.Parallel()

	var calls []string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		require.Equal(t, testConfig.APIKey, r.Header.Get("x-api-key"))

		switch r.URL.Path {
		case "/inboxes/exists":
			_, _ = io.WriteString(w, `{"exists":true}`)
		case "/attachments":
			_, _ = io.WriteString(w, `["att-1"]`)
		case "/inboxes/inbox-123/confirm":
			var opts SendEmailOptions
			require.NoError(t, json.NewDecoder(r.Body).Decode(&opts))
			require.True(t, opts.IsHTML)
			require.Equal(t, []string{"att-1"}, opts.Attachments)
			require.Equal(t, "Support Team <inbox@mailslurp.biz>", opts.From)
			_, _ = io.WriteString(w, `{"id":"sent-1","isHTML":true}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	s, err := New(testConfig, WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	email := testEmail()
	email.Format = mailer.FormatBoth
	email.Attachments = []mailer.Attachment{{Filename: "a.txt", Data: []byte("hello")}}

	res, err := s.Send(context.Background(), email)

	require.NoError(t, err)
	require.Equal(t, []string{
		"GET /inboxes/exists",
		"POST /attachments",
		"POST /inboxes/inbox-123/confirm",
	}, calls)
	sent, ok := res[mailer.FormatHTML].(*SentEmail)
	require.True(t, ok)
	require.Equal(t, "sent-1", sent.ID)
	require.NotContains(t, res, mailer.FormatText)
}
