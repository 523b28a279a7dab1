package email

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrSendFailed    = errors.New("email: failed to send")
	ErrInvalidConfig = errors.New("email: invalid config")
	ErrInvalidParams = errors.New("email: invalid dispatch params")
)

// Sender delivers one templated message through a transactional email provider.
type Sender interface {
	Send(ctx context.Context, d Dispatch) error
}

// TemplateRef names a provider template. ServiceID is the provider-side
// routing key: an EmailJS service or a Postmark message stream.
type TemplateRef struct {
	ServiceID  string
	TemplateID string
}

// Templates holds the two identifier pairs used per contact submission.
type Templates struct {
	Notify TemplateRef // sent to the site owner
	Reply  TemplateRef // acknowledgement sent back to the visitor
}

// Dispatch is a single call to the provider.
type Dispatch struct {
	TemplateRef
	To      string            // recipient, for providers that address per call
	ReplyTo string            // optional
	Params  map[string]string // template variables
}

// Validate checks the fields every provider needs.
func (d Dispatch) Validate() error {
	if d.ServiceID == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidParams)
	}
	if d.TemplateID == "" {
		return fmt.Errorf("%w: template id is required", ErrInvalidParams)
	}
	return nil
}
