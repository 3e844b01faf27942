// Package mailer defines the outbound email pipeline that mail transports plug into.
//
// The package separates message validation from delivery, so transports can be
// swapped without touching the code that builds messages.
//
// # Architecture
//
//   - Sender: interface that mail transports implement
//   - Email: the outbound message, with ordered address mappings and a body format
//   - Mailer: validates an Email, applies defaults and dispatches it to a Sender
//
// Transports live in sub-packages:
//
//   - mailslurp: delivers through a MailSlurp inbox with send-and-confirm
//   - resend: delivers through the Resend API
//
// # Usage
//
//	sender, err := mailslurp.New(mailslurp.Config{
//		InboxID:     os.Getenv("MAILSLURP_INBOX_ID"),
//		APIKey:      os.Getenv("MAILSLURP_API_KEY"),
//		SenderEmail: "inbox@mailslurp.biz",
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender, mailer.Config{Charset: "utf-8"})
//
//	email := &mailer.Email{
//		Subject: "Welcome",
//		Format:  mailer.FormatHTML,
//		HTML:    "<p>Hello!</p>",
//		From:    mailer.Addresses{}.Add("team@example.com", "Team"),
//		To:      mailer.Addresses{}.Add("alice@example.com", "Alice"),
//	}
//
//	result, err := m.Send(ctx, email)
//
// # Addresses
//
// Addresses is an ordered mapping from address to display name. An empty name
// falls back to the address itself, so Address.String always yields "Name <email>".
//
// # Formats
//
// Format is one of FormatHTML, FormatText or FormatBoth. Transports decide how
// to deliver FormatBoth; the Result returned from a send is keyed by the format
// actually used.
//
// # Message files
//
// LoadEmail and LoadEmailFile decode an Email from YAML:
//
//	subject: Monthly report
//	format: both
//	from:
//	  reports@example.com: Reports
//	to:
//	  alice@example.com: Alice
//	html: "<p>See attached.</p>"
//	text: See attached.
//	attachments:
//	  - file: report.pdf
//	    mimetype: application/pdf
//
// # Errors
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: Body for the selected format is empty (HTML for FormatBoth)
//   - ErrInvalidFormat: Unknown format value
//   - ErrSendFailed: Transport failed, joined with the transport error
//   - ErrAttachmentRead: Attachment file could not be read
//   - ErrInvalidMessage: Message file could not be decoded
package mailer
