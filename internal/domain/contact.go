package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Field identifies one input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// ParseField maps a form input name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FailureNotice is shown to the user whenever a dispatch call fails.
const FailureNotice = "Failed to send message. Please try again later."

var (
	ErrUnknownField     = errors.New("unknown form field")
	ErrSubmitNotAllowed = errors.New("submit is only allowed while idle")
	ErrResetNotAllowed  = errors.New("reset is only allowed after a successful submission")
	ErrNotSubmitting    = errors.New("no submission in progress")
	ErrEmailUnavailable = errors.New("email service is not configured")
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// FormData holds the raw field values, untrimmed, exactly as typed.
type FormData struct {
	Name    string `json:"name" validate:"trimmed_required"`
	Email   string `json:"email" validate:"trimmed_required,loose_email"`
	Subject string `json:"subject" validate:"trimmed_required"`
	Message string `json:"message" validate:"trimmed_required,trimmed_min=10"`
}

// FormDataFromRequest copies a request body into FormData.
func FormDataFromRequest(req *ContactRequest) FormData {
	return FormData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
}

// Get returns the value of a field.
func (d FormData) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldSubject:
		return d.Subject
	case FieldMessage:
		return d.Message
	}
	return ""
}

// Set returns a copy of d with one field replaced.
func (d FormData) Set(f Field, value string) (FormData, error) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldSubject:
		d.Subject = value
	case FieldMessage:
		d.Message = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return d, nil
}

// FormErrors maps a field to its error message. Only failing fields are present.
type FormErrors map[Field]string

// Clone returns an independent copy.
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// SubmissionState is the lifecycle of one form instance.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
	StateSubmitted
)

func (s SubmissionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	}
	return fmt.Sprintf("SubmissionState(%d)", int(s))
}

// MarshalText renders the state by name in JSON payloads.
func (s SubmissionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// submissionTransitions is keyed by source state.
var submissionTransitions = map[SubmissionState][]SubmissionState{
	StateIdle:       {StateSubmitting},
	StateSubmitting: {StateSubmitted, StateIdle},
	StateSubmitted:  {StateIdle},
}

// CanTransition reports whether s may move to next.
func (s SubmissionState) CanTransition(next SubmissionState) bool {
	for _, to := range submissionTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

// TimestampLayout renders e.g. "Wednesday, October 14, 2026 at 03 PM".
const TimestampLayout = "Monday, January 2, 2006 at 03 PM"

// FormatSubmittedAt formats a submission time in loc.
func FormatSubmittedAt(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(TimestampLayout)
}

// OutgoingMessage is the payload sent unchanged in every dispatch call of one attempt.
type OutgoingMessage struct {
	name    string
	email   string
	subject string
	message string
	time    string
}

// NewOutgoingMessage snapshots the form together with its formatted timestamp.
func NewOutgoingMessage(data FormData, submittedAt string) OutgoingMessage {
	return OutgoingMessage{
		name:    data.Name,
		email:   data.Email,
		subject: data.Subject,
		message: data.Message,
		time:    submittedAt,
	}
}

func (m OutgoingMessage) Name() string    { return m.name }
func (m OutgoingMessage) Email() string   { return m.email }
func (m OutgoingMessage) Subject() string { return m.subject }
func (m OutgoingMessage) Message() string { return m.message }
func (m OutgoingMessage) Time() string    { return m.time }

// TemplateParams returns the provider template variables. A fresh map is built on every call.
func (m OutgoingMessage) TemplateParams() map[string]string {
	return map[string]string{
		"name":    m.name,
		"email":   m.email,
		"subject": m.subject,
		"message": m.message,
		"time":    m.time,
	}
}

// SubmitOutcome tells the caller what a submit attempt ended in.
type SubmitOutcome int

const (
	// OutcomeRejected means validation failed; FormErrors holds the reasons.
	OutcomeRejected SubmitOutcome = iota
	OutcomeSent
	OutcomeFailed
)

func (o SubmitOutcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("SubmitOutcome(%d)", int(o))
}

// FormSnapshot is a read-only view of the controller state for rendering.
type FormSnapshot struct {
	Data   FormData        `json:"data"`
	Errors FormErrors      `json:"errors,omitempty"`
	State  SubmissionState `json:"state"`
	Notice string          `json:"notice,omitempty"`
}

// ContactResult is returned to channels that run a whole submit in one call.
type ContactResult struct {
	Outcome SubmitOutcome
	Errors  FormErrors
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and dispatches one submission
	SendContactMessage(ctx context.Context, req *ContactRequest) (*ContactResult, error)
	// IsAvailable reports whether an email provider is configured
	IsAvailable() bool
	// NewController returns a fresh form controller for one page view
	NewController() ContactController
}

// ContactController drives one contact form instance.
type ContactController interface {
	OnFieldChange(field Field, value string) error
	OnSubmit(ctx context.Context) (SubmitOutcome, error)
	ResetAfterSubmission() error
	Snapshot() FormSnapshot
}
