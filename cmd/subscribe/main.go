// Command subscribe submits one email to a project's newsletter through the
// same handler the browser form uses.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/statictask/newsletter/form"
	"github.com/statictask/newsletter/subscription"
)

type config struct {
	APIURL    string `env:"NEWSLETTER_API_URL" envDefault:"http://localhost:8080"`
	ProjectID int64  `env:"NEWSLETTER_PROJECT_ID" envDefault:"4"`
	LogLevel  string `env:"NEWSLETTER_LOG_LEVEL" envDefault:"info"`
}

var errSubmissionFailed = errors.New("subscription failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		email     string
		endpoint  string
		projectID int64
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:           "subscribe",
		Short:         "subscribe an email to a newsletter project",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("endpoint") {
				cfg.APIURL = endpoint
			}
			if cmd.Flags().Changed("project") {
				cfg.ProjectID = projectID
			}
			if cmd.Flags().Changed("log") {
				cfg.LogLevel = logLevel
			}

			logger := newLogger(cmd, cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = run(ctx, cfg, email, logger)
			if err != nil && !errors.Is(err, errSubmissionFailed) {
				logger.Error("subscribe failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address to subscribe")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "newsletter API base URL (default $NEWSLETTER_API_URL)")
	cmd.Flags().Int64Var(&projectID, "project", 0, "project id (default $NEWSLETTER_PROJECT_ID)")
	cmd.Flags().StringVar(&logLevel, "log", "", "log level [debug, info, warn, error]")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}

// run fires one synthetic submit at a headless copy of the form.
func run(ctx context.Context, cfg config, email string, logger *slog.Logger) error {
	client, err := subscription.NewClient(subscription.Config{
		BaseURL:   cfg.APIURL,
		ProjectID: cfg.ProjectID,
	})
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	doc := form.NewStaticDocument()
	doc.Add(form.EmailInputID, email)

	handler := form.NewHandler(client, form.InputValue(doc, form.EmailInputID), form.NewSlogSink(logger), logger)

	logger.Debug("submitting", "endpoint", client.Endpoint())
	results, err := handler.HandleSubmit(ctx, &form.StaticEvent{Type: form.SubmitEvent})
	if err != nil {
		return fmt.Errorf("handling submit: %w", err)
	}

	result := <-results
	if result.Err != nil {
		return fmt.Errorf("%w: %w", errSubmissionFailed, result.Err)
	}
	return nil
}
