package mailer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// messageFile is the YAML shape of an Email.
type messageFile struct {
	Headers     map[string]string `yaml:"headers"`
	Subject     string            `yaml:"subject"`
	Charset     string            `yaml:"charset"`
	Format      Format            `yaml:"format"`
	HTML        string            `yaml:"html"`
	Text        string            `yaml:"text"`
	From        Addresses         `yaml:"from"`
	ReplyTo     Addresses         `yaml:"reply_to"`
	To          Addresses         `yaml:"to"`
	CC          Addresses         `yaml:"cc"`
	BCC         Addresses         `yaml:"bcc"`
	Attachments []attachmentFile  `yaml:"attachments"`
}

type attachmentFile struct {
	Filename  string `yaml:"filename"`
	Mimetype  string `yaml:"mimetype"`
	ContentID string `yaml:"content_id"`
	File      string `yaml:"file"`
	Data      string `yaml:"data"`
}

// LoadEmail decodes a YAML message definition.
//
// Address fields are mappings of address to display name and keep document order:
//
//	to:
//	  alice@example.com: Alice
//	  bob@example.com: Bob
//
// A plain list of addresses is accepted as well.
func LoadEmail(r io.Reader) (*Email, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var mf messageFile
	if err := dec.Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidMessage)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if mf.Format != "" && !mf.Format.Valid() {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidMessage, ErrInvalidFormat, mf.Format)
	}

	email := &Email{
		Headers: mf.Headers,
		Subject: mf.Subject,
		Charset: mf.Charset,
		Format:  mf.Format,
		HTML:    mf.HTML,
		Text:    mf.Text,
		From:    mf.From,
		ReplyTo: mf.ReplyTo,
		To:      mf.To,
		CC:      mf.CC,
		BCC:     mf.BCC,
	}
	for _, a := range mf.Attachments {
		att := Attachment{
			Filename:  a.Filename,
			Mimetype:  a.Mimetype,
			ContentID: a.ContentID,
			File:      a.File,
		}
		if a.Data != "" {
			att.Data = []byte(a.Data)
		}
		if att.Filename == "" && att.File != "" {
			att.Filename = filepath.Base(att.File)
		}
		email.Attachments = append(email.Attachments, att)
	}
	return email, nil
}

// LoadEmailFile reads a YAML message from disk.
// Relative attachment paths are resolved against the message file's directory.
func LoadEmailFile(path string) (*Email, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	email, err := LoadEmail(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range email.Attachments {
		if p := email.Attachments[i].File; p != "" && !filepath.IsAbs(p) {
			email.Attachments[i].File = filepath.Join(dir, p)
		}
	}
	return email, nil
}

// UnmarshalYAML decodes either a mapping of address to name or a list of addresses.
func (as *Addresses) UnmarshalYAML(node *yaml.Node) error {
	var out Addresses
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: display name for %q must be a string", val.Line, key.Value)
			}
			name := val.Value
			if val.ShortTag() == "!!null" {
				name = ""
			}
			out = out.Add(key.Value, name)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: address must be a string", item.Line)
			}
			out = out.Add(item.Value, "")
		}
	case yaml.ScalarNode:
		if node.ShortTag() != "!!null" && node.Value != "" {
			out = out.Add(node.Value, "")
		}
	default:
		return fmt.Errorf("line %d: unsupported address list", node.Line)
	}
	*as = out
	return nil
}
