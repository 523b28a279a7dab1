package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultGreeting is the canned reply served by the greeting route.
const DefaultGreeting = "Hello from wasky_links i'll get back to you in the next 24 hours. Thank you for contacting me "

// Email provider names accepted by EMAIL_PROVIDER.
const (
	ProviderEmailJS  = "emailjs"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	AllowedOrigins  []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080,http://localhost:5173"`
	GreetingMessage string   `env:"GREETING_MESSAGE"`

	// Email dispatch
	EmailProvider    string        `env:"EMAIL_PROVIDER" envDefault:"emailjs"`
	EmailHTTPTimeout time.Duration `env:"EMAIL_HTTP_TIMEOUT" envDefault:"0s"` // 0 waits for the provider indefinitely
	OwnerEmail       string        `env:"OWNER_EMAIL" envDefault:"likitajoel@gmail.com"`
	DevMailDir       string        `env:"DEV_MAIL_DIR" envDefault:"./tmp/mail"`

	// EmailJS
	EmailJSBaseURL          string `env:"EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com"`
	EmailJSServiceID        string `env:"EMAILJS_SERVICE_ID" envDefault:"Wasky_Links"`
	EmailJSNotifyTemplateID string `env:"EMAILJS_NOTIFY_TEMPLATE_ID" envDefault:"Wasky_Links_Contact"`
	EmailJSReplyTemplateID  string `env:"EMAILJS_REPLY_TEMPLATE_ID" envDefault:"Wasky_Links_Reply"`
	EmailJSPublicKey        string `env:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey       string `env:"EMAILJS_PRIVATE_KEY"` // Optional access token for strict mode

	// Postmark
	PostmarkServerToken    string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken   string `env:"POSTMARK_ACCOUNT_TOKEN"`
	PostmarkSenderEmail    string `env:"POSTMARK_SENDER_EMAIL"`
	PostmarkMessageStream  string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	PostmarkNotifyTemplate string `env:"POSTMARK_NOTIFY_TEMPLATE" envDefault:"contact-notification"`
	PostmarkReplyTemplate  string `env:"POSTMARK_REPLY_TEMPLATE" envDefault:"contact-auto-reply"`
}

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() (*Config, error) {
	// .env is only expected locally
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.EmailProvider = strings.ToLower(strings.TrimSpace(cfg.EmailProvider))
	cfg.EmailJSBaseURL = strings.TrimRight(cfg.EmailJSBaseURL, "/")
	if cfg.GreetingMessage == "" {
		cfg.GreetingMessage = DefaultGreeting
	}

	switch cfg.EmailProvider {
	case ProviderEmailJS, ProviderPostmark, ProviderDev:
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if cfg.EmailProvider == ProviderEmailJS && cfg.EmailJSPublicKey == "" {
		log.Println("WARNING: EMAILJS_PUBLIC_KEY is missing. Contact form will be unavailable.")
	}

	return cfg, nil
}

// Location returns the time zone used for submission timestamps.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
