package main

import (
	"bytes"
	"os"
	"testing"

	"portfolio-contact-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	sendReq = domain.ContactRequest{}
	provider = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSendCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMAIL_PROVIDER", "emailjs")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DEV_MAIL_DIR", dir)

	t.Run("writes both dispatches with the dev provider", func(t *testing.T) {
		out, err := runCLI(t, "send", "--provider", "dev",
			"--name", "Jo", "--email", "jo@x.com", "--subject", "Hi", "--message", "This is long enough.")
		require.NoError(t, err)
		assert.Contains(t, out, "Your message has been sent successfully!")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("prints field errors", func(t *testing.T) {
		out, err := runCLI(t, "send", "--provider", "dev", "--name", "Jo", "--email", "bad-email")
		require.Error(t, err)
		assert.Contains(t, out, "email: Email is invalid")
		assert.Contains(t, out, "message: Message is required")
	})

	t.Run("unconfigured provider", func(t *testing.T) {
		t.Setenv("EMAILJS_PUBLIC_KEY", "")
		_, err := runCLI(t, "send", "--name", "Jo")
		assert.ErrorContains(t, err, "email service not configured")
	})
}
