package mailslurp

import (
	"encoding/json"
	"time"
)

// InboxExists is the response of the inbox existence check.
type InboxExists struct {
	Exists bool `json:"exists"`
}

// UploadAttachmentOptions is the request body of an attachment upload.
type UploadAttachmentOptions struct {
	Filename       string `json:"filename,omitempty"`
	ContentType    string `json:"contentType,omitempty"`
	Base64Contents string `json:"base64Contents"`
}

// SendEmailOptions is the request body of a send.
type SendEmailOptions struct {
	From        string   `json:"from,omitempty"`
	ReplyTo     string   `json:"replyTo,omitempty"`
	Subject     string   `json:"subject,omitempty"`
	Charset     string   `json:"charset,omitempty"`
	Body        string   `json:"body,omitempty"`
	To          []string `json:"to,omitempty"`
	CC          []string `json:"cc,omitempty"`
	BCC         []string `json:"bcc,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
	IsHTML      bool     `json:"isHTML"`
}

// SentEmail is the confirmation returned once the message was accepted.
// Raw always holds the response body as received.
type SentEmail struct {
	SentAt      time.Time       `json:"sentAt"`
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	InboxID     string          `json:"inboxId"`
	MessageID   string          `json:"messageId,omitempty"`
	From        string          `json:"from,omitempty"`
	ReplyTo     string          `json:"replyTo,omitempty"`
	Subject     string          `json:"subject,omitempty"`
	Body        string          `json:"body,omitempty"`
	Charset     string          `json:"charset,omitempty"`
	Raw         json.RawMessage `json:"-"`
	To          []string        `json:"to"`
	CC          []string        `json:"cc,omitempty"`
	BCC         []string        `json:"bcc,omitempty"`
	Attachments []string        `json:"attachments,omitempty"`
	IsHTML      bool            `json:"isHTML"`
}
