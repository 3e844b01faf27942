package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Charset       string `env:"MAILER_CHARSET" envDefault:"utf-8"`
	DefaultFormat Format `env:"MAILER_DEFAULT_FORMAT" envDefault:"html"`
}
