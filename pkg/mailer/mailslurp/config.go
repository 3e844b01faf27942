package mailslurp

// Config holds MailSlurp transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	InboxID     string `env:"MAILSLURP_INBOX_ID"`
	APIKey      string `env:"MAILSLURP_API_KEY"`
	SenderEmail string `env:"MAILSLURP_EMAIL"` // Address of the inbox; always used as the From address
}

func (c Config) validate() error {
	if c.InboxID == "" {
		return ErrMissingInbox
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.SenderEmail == "" {
		return ErrMissingSenderEmail
	}
	return nil
}
