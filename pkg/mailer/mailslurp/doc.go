// Package mailslurp implements mailer.Sender on top of a MailSlurp inbox.
//
// Every Send makes these calls, in order:
//
//  1. Check that the inbox for Config.SenderEmail exists (ErrInboxNotFound otherwise).
//  2. Upload each attachment that has content and collect the returned ids.
//  3. Make one send-and-confirm call from Config.InboxID, which blocks until MailSlurp accepts the message.
//
// Format mailer.FormatText sends the text body with isHTML=false. Any other
// format sends the HTML body, so FormatBoth still results in a single send. The
// returned mailer.Result has exactly one key, the format used, holding *SentEmail.
//
// The From header always uses Config.SenderEmail; only the display name comes
// from the email. Reply-to carries the first reply-to display name as is.
//
// # Usage
//
//	sender, err := mailslurp.New(mailslurp.Config{
//		InboxID:     os.Getenv("MAILSLURP_INBOX_ID"),
//		APIKey:      os.Getenv("MAILSLURP_API_KEY"),
//		SenderEmail: os.Getenv("MAILSLURP_EMAIL"),
//	}, mailslurp.WithLogger(log))
//	if err != nil {
//		return err // errors.Is(err, mailslurp.ErrInvalidConfig)
//	}
//
//	result, err := sender.Send(ctx, email)
//	sent := result[mailer.FormatHTML].(*mailslurp.SentEmail)
//
// # Errors
//
//   - ErrInvalidConfig: a required Config field is empty (ErrMissingInbox, ErrMissingAPIKey, ErrMissingSenderEmail)
//   - ErrInboxNotFound: the sender inbox does not exist
//   - *APIError: the API answered with a non-2xx status; matches ErrRequestFailed
//   - ErrDecodeFailed: the API response could not be decoded
//
// Nothing is retried. Transport errors are returned from Send as is.
package mailslurp
