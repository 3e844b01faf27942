package mailer

import (
	"fmt"
	"os"
	"slices"
)

// Format selects which body of an Email is delivered.
type Format string

// Supported body formats.
const (
	FormatHTML Format = "html"
	FormatText Format = "text"
	FormatBoth Format = "both"
)

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case FormatHTML, FormatText, FormatBoth:
		return true
	}
	return false
}

// Address is a single mailbox with an optional display name.
type Address struct {
	Email string
	Name  string
}

// DisplayName returns the name, falling back to the address when no name was given.
func (a Address) DisplayName() string {
	if a.Name == "" {
		return a.Email
	}
	return a.Name
}

// String formats the address as "Name <email>".
func (a Address) String() string {
	return fmt.Sprintf("%s <%s>", a.DisplayName(), a.Email)
}

// Addresses is an ordered mapping from email address to display name.
// Insertion order is preserved; adding an existing address replaces its name.
type Addresses []Address

// Add returns a copy of the list with the address appended, or renamed if already present.
// The receiver is never modified.
func (as Addresses) Add(email, name string) Addresses {
	out := slices.Clone(as)
	for i := range out {
		if out[i].Email == email {
			out[i].Name = name
			return out
		}
	}
	return append(out, Address{Email: email, Name: name})
}

// First returns the first entry, if any.
func (as Addresses) First() (Address, bool) {
	if len(as) == 0 {
		return Address{}, false
	}
	return as[0], true
}

// Emails returns the bare addresses in order.
func (as Addresses) Emails() []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.Email)
	}
	return out
}

// Email represents an outbound message handed to a Sender.
// Senders must treat it as read-only.
type Email struct {
	Headers     map[string]string // Custom headers (provider permitting)
	Subject     string
	Charset     string
	Format      Format // Which body is delivered
	HTML        string // HTML body
	Text        string // Plain text body
	From        Addresses
	ReplyTo     Addresses
	To          Addresses
	CC          Addresses
	BCC         Addresses
	Attachments []Attachment
}

// Body returns the body matching f; both falls back to HTML.
func (e *Email) Body(f Format) string {
	if f == FormatText {
		return e.Text
	}
	return e.HTML
}

// Attachment is either inline data or a path to a file on disk.
type Attachment struct {
	Filename  string // Display name for the attachment
	Mimetype  string // Declared MIME type, optional
	ContentID string // Optional Content-ID for inline attachments
	File      string // Path read when Data is empty
	Data      []byte // Inline content, preferred over File
}

// Content resolves the attachment bytes.
// Inline data wins; otherwise the file is read. Returns nil when neither is set.
func (a Attachment) Content() ([]byte, error) {
	if len(a.Data) > 0 {
		return a.Data, nil
	}
	if a.File == "" {
		return nil, nil
	}
	data, err := os.ReadFile(a.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAttachmentRead, a.File, err)
	}
	return data, nil
}

// Result maps the format a message was delivered in to the provider response.
type Result map[Format]any
