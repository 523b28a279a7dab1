package config_test

import (
	"os"
	"testing"
	"time"

	"portfolio-contact-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "emailjs")
	t.Setenv("EMAILJS_PUBLIC_KEY", "pk")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("GREETING_MESSAGE", "")
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultGreeting, cfg.GreetingMessage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "Wasky_Links", cfg.EmailJSServiceID)
	assert.Equal(t, "Wasky_Links_Contact", cfg.EmailJSNotifyTemplateID)
	assert.Equal(t, "Wasky_Links_Reply", cfg.EmailJSReplyTemplateID)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadConfig_Normalizes(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", " Postmark ")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("EMAILJS_BASE_URL", "http://localhost:9000/")
	t.Setenv("GREETING_MESSAGE", "hi")
	t.Setenv("EMAIL_HTTP_TIMEOUT", "5s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.ProviderPostmark, cfg.EmailProvider)
	assert.Equal(t, "http://localhost:9000", cfg.EmailJSBaseURL)
	assert.Equal(t, "hi", cfg.GreetingMessage)
	assert.Equal(t, 5*time.Second, cfg.EmailHTTPTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "carrier-pigeon")
		t.Setenv("TIMEZONE", "UTC")
		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "EMAIL_PROVIDER")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "dev")
		t.Setenv("TIMEZONE", "Mars/Olympus")
		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "TIMEZONE")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "dev")
		t.Setenv("TIMEZONE", "UTC")
		t.Setenv("EMAIL_HTTP_TIMEOUT", "soon")
		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}
