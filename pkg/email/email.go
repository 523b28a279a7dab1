package email

import (
	"fmt"
	"net/http"

	"portfolio-contact-backend/config"
)

// NewSender builds the Sender selected by EMAIL_PROVIDER.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.EmailProvider {
	case config.ProviderEmailJS:
		return NewEmailJSClient(
			cfg.EmailJSBaseURL,
			cfg.EmailJSPublicKey,
			cfg.EmailJSPrivateKey,
			&http.Client{Timeout: cfg.EmailHTTPTimeout},
		)
	case config.ProviderPostmark:
		return NewPostmarkSender(PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			SenderEmail:  cfg.PostmarkSenderEmail,
		})
	case config.ProviderDev:
		return NewDevSender(cfg.DevMailDir), nil
	}
	return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.EmailProvider)
}

// TemplatesFromConfig returns the notification and auto-reply identifiers
// for the configured provider.
func TemplatesFromConfig(cfg *config.Config) Templates {
	if cfg.EmailProvider == config.ProviderPostmark {
		return Templates{
			Notify: TemplateRef{ServiceID: cfg.PostmarkMessageStream, TemplateID: cfg.PostmarkNotifyTemplate},
			Reply:  TemplateRef{ServiceID: cfg.PostmarkMessageStream, TemplateID: cfg.PostmarkReplyTemplate},
		}
	}
	return Templates{
		Notify: TemplateRef{ServiceID: cfg.EmailJSServiceID, TemplateID: cfg.EmailJSNotifyTemplateID},
		Reply:  TemplateRef{ServiceID: cfg.EmailJSServiceID, TemplateID: cfg.EmailJSReplyTemplateID},
	}
}
