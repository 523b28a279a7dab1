package usecase

import (
	"fmt"

	"portfolio-contact-backend/internal/domain"
)

// ContactForm is the state owned by one form instance. Its methods are
// pure transitions: no I/O, no clock, no logging.
type ContactForm struct {
	data   domain.FormData
	errors domain.FormErrors
	state  domain.SubmissionState
	notice string
}

// NewContactForm returns an empty form in the idle state.
func NewContactForm() *ContactForm {
	return &ContactForm{errors: domain.FormErrors{}}
}

// ApplyFieldChange stores a new value and clears that field's error.
// Other fields are not revalidated.
func (f *ContactForm) ApplyFieldChange(field domain.Field, value string) error {
	data, err := f.data.Set(field, value)
	if err != nil {
		return err
	}
	f.data = data
	delete(f.errors, field)
	return nil
}

// BeginSubmit validates the current data. When the form is valid it moves
// to Submitting and returns the message to dispatch; otherwise the errors
// are stored and ok is false.
func (f *ContactForm) BeginSubmit(submittedAt string) (msg domain.OutgoingMessage, ok bool, err error) {
	if f.state != domain.StateIdle {
		return domain.OutgoingMessage{}, false, domain.ErrSubmitNotAllowed
	}

	f.errors = Validate(f.data)
	if len(f.errors) > 0 {
		return domain.OutgoingMessage{}, false, nil
	}

	if err := f.transition(domain.StateSubmitting); err != nil {
		return domain.OutgoingMessage{}, false, err
	}
	f.notice = ""
	return domain.NewOutgoingMessage(f.data, submittedAt), true, nil
}

// ApplySubmitResult finishes a submission. A nil sendErr empties the form
// and moves to Submitted; anything else returns to Idle with the draft kept
// and the failure notice raised.
func (f *ContactForm) ApplySubmitResult(sendErr error) error {
	if f.state != domain.StateSubmitting {
		return domain.ErrNotSubmitting
	}

	if sendErr != nil {
		f.notice = domain.FailureNotice
		return f.transition(domain.StateIdle)
	}

	f.errors = domain.FormErrors{}
	f.data = domain.FormData{}
	return f.transition(domain.StateSubmitted)
}

// ResetAfterSubmission returns a submitted form to Idle for another message.
func (f *ContactForm) ResetAfterSubmission() error {
	if f.state != domain.StateSubmitted {
		return domain.ErrResetNotAllowed
	}
	f.errors = domain.FormErrors{}
	return f.transition(domain.StateIdle)
}

// DismissNotice clears the failure notice once the user acknowledged it.
func (f *ContactForm) DismissNotice() {
	f.notice = ""
}

func (f *ContactForm) State() domain.SubmissionState { return f.state }

func (f *ContactForm) Data() domain.FormData { return f.data }

func (f *ContactForm) Errors() domain.FormErrors { return f.errors.Clone() }

func (f *ContactForm) Notice() string { return f.notice }

// Snapshot copies the state for rendering.
func (f *ContactForm) Snapshot() domain.FormSnapshot {
	return domain.FormSnapshot{
		Data:   f.data,
		Errors: f.errors.Clone(),
		State:  f.state,
		Notice: f.notice,
	}
}

func (f *ContactForm) transition(to domain.SubmissionState) error {
	if !f.state.CanTransition(to) {
		return fmt.Errorf("invalid submission transition %s -> %s", f.state, to)
	}
	f.state = to
	return nil
}
