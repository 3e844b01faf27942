package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/slurpmail/pkg/logger"
	"github.com/dmitrymomot/slurpmail/pkg/mailer"
	"github.com/dmitrymomot/slurpmail/pkg/mailer/mailslurp"
	"github.com/dmitrymomot/slurpmail/pkg/mailer/resend"
)

type CLI struct {
	Message        string        `arg:"" name:"message" help:"Path to the YAML message file." type:"existingfile"`
	Provider       string        `name:"provider" help:"Mail transport to use." env:"SLURPSEND_PROVIDER" default:"mailslurp" enum:"mailslurp,resend"`
	InboxID        string        `name:"inbox-id" help:"MailSlurp inbox id to send from." env:"MAILSLURP_INBOX_ID"`
	APIKey         string        `name:"api-key" help:"MailSlurp API key." env:"MAILSLURP_API_KEY"`
	SenderEmail    string        `name:"sender-email" help:"Email address of the MailSlurp inbox." env:"MAILSLURP_EMAIL"`
	BaseURL        string        `name:"base-url" help:"MailSlurp API endpoint." env:"MAILSLURP_BASE_URL" default:"https://api.mailslurp.com"`
	ResendAPIKey   string        `name:"resend-api-key" help:"Resend API key." env:"RESEND_API_KEY"`
	ResendFrom     string        `name:"resend-from" help:"Default sender address for Resend." env:"RESEND_FROM_EMAIL"`
	ResendFromName string        `name:"resend-from-name" help:"Default sender name for Resend." env:"RESEND_FROM_NAME"`
	Charset        string        `name:"charset" help:"Charset used when the message sets none." env:"MAILER_CHARSET" default:"utf-8"`
	Format         string        `name:"format" help:"Format used when the message sets none." env:"MAILER_DEFAULT_FORMAT" default:"html" enum:"html,text,both"`
	Timeout        time.Duration `name:"timeout" help:"Timeout for each API request." env:"SLURPSEND_TIMEOUT" default:"60s"`
	LogLevel       slog.Level    `name:"log-level" help:"Log level." env:"SLURPSEND_LOG_LEVEL" default:"INFO" enum:"DEBUG,INFO,WARN,ERROR"`
	SentryDSN      string        `name:"sentry-dsn" help:"Report failures to Sentry." env:"SENTRY_DSN" optional:""`
}

func (CLI *CLI) initLogger() *slog.Logger {
	return logger.NewWithSentry(logger.SentryConfig{
		DSN:         CLI.SentryDSN,
		Environment: "cli",
		MinLevel:    slog.LevelWarn,
	}, CLI.LogLevel, logger.SendIDExtractor)
}

func (CLI *CLI) initSender(log *slog.Logger) (mailer.Sender, error) {
	if CLI.Provider == "resend" {
		return resend.New(resend.Config{
			APIKey:      CLI.ResendAPIKey,
			SenderEmail: CLI.ResendFrom,
			SenderName:  CLI.ResendFromName,
		}, resend.WithLogger(log)), nil
	}

	sender, err := mailslurp.New(mailslurp.Config{
		InboxID:     CLI.InboxID,
		APIKey:      CLI.APIKey,
		SenderEmail: CLI.SenderEmail,
	},
		mailslurp.WithLogger(log),
		mailslurp.WithBaseURL(CLI.BaseURL),
		mailslurp.WithHTTPClient(&http.Client{Timeout: CLI.Timeout}),
	)
	if err != nil {
		return nil, err
	}
	return sender, nil
}

func (CLI *CLI) run(ctx context.Context, log *slog.Logger) error {
	email, err := mailer.LoadEmailFile(CLI.Message)
	if err != nil {
		return err
	}

	sender, err := CLI.initSender(log)
	if err != nil {
		return err
	}

	m := mailer.New(sender, mailer.Config{
		Charset:       CLI.Charset,
		DefaultFormat: mailer.Format(CLI.Format),
	}, mailer.WithLogger(log))

	result, err := m.Send(ctx, email)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "slurpsend: loading .env: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var CLI CLI
	kongCtx := kong.Parse(&CLI,
		kong.Name("slurpsend"),
		kong.Description("Send a YAML-defined email through a MailSlurp inbox."),
	)
	log := CLI.initLogger()

	err := CLI.run(ctx, log)
	sentry.Flush(2 * time.Second)
	kongCtx.FatalIfErrorf(err)
}
