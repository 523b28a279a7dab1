package usecase

import (
	"context"
	"log/slog"
	"time"

	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/pkg/logger"
)

// ControllerOption customizes a contact controller.
type ControllerOption func(*contactController)

// WithClock overrides the submission time source.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *contactController) { c.now = now }
}

// WithLocation sets the time zone of the submission timestamp.
func WithLocation(loc *time.Location) ControllerOption {
	return func(c *contactController) { c.loc = loc }
}

// WithLogger overrides the logger.
func WithLogger(log *slog.Logger) ControllerOption {
	return func(c *contactController) { c.log = log }
}

type contactController struct {
	form       *ContactForm
	dispatcher Dispatcher
	now        func() time.Time
	loc        *time.Location
	log        *slog.Logger
}

// NewContactController wires a fresh form to a dispatcher.
func NewContactController(dispatcher Dispatcher, opts ...ControllerOption) domain.ContactController {
	c := &contactController{
		form:       NewContactForm(),
		dispatcher: dispatcher,
		now:        time.Now,
		loc:        time.UTC,
		log:        logger.Log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *contactController) OnFieldChange(field domain.Field, value string) error {
	return c.form.ApplyFieldChange(field, value)
}

// OnSubmit runs validation and, when it passes, both dispatch calls in
// sequence. Dispatch failures end in OutcomeFailed with the failure notice
// set; the returned error only reports a submit outside the idle state.
func (c *contactController) OnSubmit(ctx context.Context) (domain.SubmitOutcome, error) {
	msg, ok, err := c.form.BeginSubmit(domain.FormatSubmittedAt(c.now(), c.loc))
	if err != nil {
		return domain.OutcomeRejected, err
	}
	if !ok {
		c.log.Debug("contact form rejected", "fields", len(c.form.errors))
		return domain.OutcomeRejected, nil
	}

	sendErr := domain.ErrEmailUnavailable
	if c.dispatcher != nil {
		sendErr = c.dispatcher.Dispatch(ctx, msg)
	}
	if sendErr != nil {
		c.log.Error("contact dispatch failed", "error", sendErr)
	}
	if err := c.form.ApplySubmitResult(sendErr); err != nil {
		return domain.OutcomeFailed, err
	}

	if sendErr != nil {
		return domain.OutcomeFailed, nil
	}
	c.log.Info("contact message sent", "submitted_at", msg.Time())
	return domain.OutcomeSent, nil
}

func (c *contactController) ResetAfterSubmission() error {
	return c.form.ResetAfterSubmission()
}

func (c *contactController) Snapshot() domain.FormSnapshot {
	return c.form.Snapshot()
}
