package usecase

import (
	"context"
	"fmt"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/email"
)

// Dispatcher delivers one outgoing contact message.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg domain.OutgoingMessage) error
}

// ContactDispatcher sends the owner notification and then the visitor
// acknowledgement. The acknowledgement is only attempted after the
// notification went through.
type ContactDispatcher struct {
	sender     email.Sender
	templates  email.Templates
	ownerEmail string
}

// NewContactDispatcher creates a dispatcher over any email.Sender.
func NewContactDispatcher(sender email.Sender, templates email.Templates, ownerEmail string) *ContactDispatcher {
	return &ContactDispatcher{
		sender:     sender,
		templates:  templates,
		ownerEmail: ownerEmail,
	}
}

func (d *ContactDispatcher) Dispatch(ctx context.Context, msg domain.OutgoingMessage) error {
	notify := email.Dispatch{
		TemplateRef: d.templates.Notify,
		To:          d.ownerEmail,
		ReplyTo:     msg.Email(),
		Params:      msg.TemplateParams(),
	}
	if err := d.sender.Send(ctx, notify); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	reply := email.Dispatch{
		TemplateRef: d.templates.Reply,
		To:          msg.Email(),
		Params:      msg.TemplateParams(),
	}
	if err := d.sender.Send(ctx, reply); err != nil {
		return fmt.Errorf("failed to send contact auto-reply: %w", err)
	}

	return nil
}
