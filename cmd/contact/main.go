package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio-contact-backend/config"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/tui"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	provider string
	sendReq  domain.ContactRequest
)

// rootCmd opens the interactive contact form
var rootCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the site owner",
	Long: `Fill in the contact form in the terminal.

Messages go through the same email provider as the website, selected by
EMAIL_PROVIDER or --provider.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// sendCmd submits one message without the interactive form
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message from flags",
	RunE:  runSend,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Email provider: emailjs, postmark or dev (default: EMAIL_PROVIDER)")

	sendCmd.Flags().StringVar(&sendReq.Name, "name", "", "Your full name")
	sendCmd.Flags().StringVar(&sendReq.Email, "email", "", "Your email address")
	sendCmd.Flags().StringVar(&sendReq.Subject, "subject", "", "Subject line")
	sendCmd.Flags().StringVar(&sendReq.Message, "message", "", "Message body")

	rootCmd.AddCommand(sendCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// setup loads config and builds the dispatcher. Logs go to stderr so they
// do not draw over the form.
func setup() (*config.Config, usecase.Dispatcher, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if provider != "" {
		cfg.EmailProvider = provider
	}

	logger.Log = logger.New(os.Stderr, cfg.LogLevel, "text")

	sender, err := email.NewSender(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("email service not configured: %w", err)
	}
	return cfg, usecase.NewContactDispatcher(sender, email.TemplatesFromConfig(cfg), cfg.OwnerEmail), nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, dispatcher, err := setup()
	if err != nil {
		return err
	}

	// Dispatch failures are surfaced in the form itself
	logger.Log = logger.New(os.Stderr, "error", "text")

	m, err := tui.Run(cmd.Context(), dispatcher, tui.WithLocation(cfg.Location()))
	if err != nil {
		return err
	}
	if m.Sent() > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d message(s) sent.\n", m.Sent())
	}
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, dispatcher, err := setup()
	if err != nil {
		return err
	}

	uc := usecase.NewContactUsecase(dispatcher, usecase.WithLocation(cfg.Location()))
	res, err := uc.SendContactMessage(cmd.Context(), &sendReq)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch res.Outcome {
	case domain.OutcomeRejected:
		for _, f := range domain.Fields {
			if msg, ok := res.Errors[f]; ok {
				fmt.Fprintf(out, "%s: %s\n", f, msg)
			}
		}
		return errors.New("message rejected")
	case domain.OutcomeFailed:
		return errors.New(domain.FailureNotice)
	}

	fmt.Fprintln(out, "Your message has been sent successfully!")
	return nil
}
