package email

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/mrz1836/postmark"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PostmarkConfig holds the Postmark credentials and sender identity.
type PostmarkConfig struct {
	ServerToken  string
	AccountToken string
	SenderEmail  string
	BaseURL      string // optional API endpoint override
}

type postmarkSender struct {
	client *postmark.Client
	from   string
}

// NewPostmarkSender creates a Sender backed by Postmark templates.
// TemplateID is used as the template alias and ServiceID as the message stream.
func NewPostmarkSender(cfg PostmarkConfig) (Sender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: Postmark server token is required", ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: Postmark account token is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: Postmark sender email must be a valid email address", ErrInvalidConfig)
	}

	client := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}

	return &postmarkSender{client: client, from: cfg.SenderEmail}, nil
}

func (s *postmarkSender) Send(ctx context.Context, d Dispatch) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.To == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidParams)
	}

	model := make(map[string]interface{}, len(d.Params))
	for k, v := range d.Params {
		model[k] = v
	}

	resp, err := s.client.SendTemplatedEmail(ctx, postmark.TemplatedEmail{
		TemplateAlias: d.TemplateID,
		TemplateModel: model,
		From:          s.from,
		To:            d.To,
		ReplyTo:       d.ReplyTo,
		Tag:           d.TemplateID,
		MessageStream: d.ServiceID,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrSendFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
