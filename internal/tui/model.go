// Package tui is a terminal front end for the contact form. Key events and
// dispatch results are handled one at a time by the bubbletea event loop,
// so the form state needs no locking.
package tui

import (
	"context"
	"strings"
	"time"

	"portfolio-contact-backend/internal/delivery/http/view"
	"portfolio-contact-backend/internal/domain"
	"portfolio-contact-backend/internal/usecase"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// focusSubmit is the focus index of the send button, after the four fields.
const focusSubmit = 4

// submitResultMsg carries the outcome of a dispatch back into the loop.
type submitResultMsg struct {
	err error
}

// Option customizes the model.
type Option func(*Model)

// WithClock overrides the submission time source.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLocation sets the time zone of the submission timestamp.
func WithLocation(loc *time.Location) Option {
	return func(m *Model) { m.loc = loc }
}

// Model is the bubbletea model of one contact form instance.
type Model struct {
	ctx        context.Context
	form       *usecase.ContactForm
	dispatcher usecase.Dispatcher
	now        func() time.Time
	loc        *time.Location

	inputs  []textinput.Model // name, email, subject
	message textarea.Model
	focus   int

	sent   int
	width  int
	styles Styles
}

// New builds an empty form. A nil dispatcher makes every send fail with
// the failure notice.
func New(ctx context.Context, dispatcher usecase.Dispatcher, opts ...Option) Model {
	m := Model{
		ctx:        ctx,
		form:       usecase.NewContactForm(),
		dispatcher: dispatcher,
		now:        time.Now,
		loc:        time.UTC,
		styles:     DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	placeholders := []string{"Your full name", "your.email@example.com", "Project inquiry"}
	for _, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Width = 48
		m.inputs = append(m.inputs, ti)
	}

	ta := textarea.New()
	ta.Placeholder = "Tell me about your project..."
	ta.ShowLineNumbers = false
	ta.SetWidth(50)
	ta.SetHeight(5)
	m.message = ta

	m.setFocus(0)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Snapshot exposes the form state, mainly for tests.
func (m Model) Snapshot() domain.FormSnapshot {
	return m.form.Snapshot()
}

// Focus returns the focused element: 0-3 for the fields, 4 for the button.
func (m Model) Focus() int {
	return m.focus
}

// Sent counts successful submissions in this session.
func (m Model) Sent() int {
	return m.sent
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case submitResultMsg:
		if err := m.form.ApplySubmitResult(msg.err); err != nil {
			return m, nil
		}
		if m.form.State() == domain.StateSubmitted {
			m.sent++
			m.clearInputs()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The failure notice blocks everything until acknowledged
	if m.form.Notice() != "" {
		switch msg.String() {
		case "enter", "esc":
			m.form.DismissNotice()
		}
		return m, nil
	}

	switch m.form.State() {
	case domain.StateSubmitting:
		return m, nil

	case domain.StateSubmitted:
		switch msg.String() {
		case "enter":
			if err := m.form.ResetAfterSubmission(); err == nil {
				m.setFocus(0)
			}
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.setFocus(m.nextFocus(1))
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.nextFocus(-1))
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus == focusSubmit {
			return m.submit()
		}
		if m.focus < len(m.inputs) {
			m.setFocus(m.nextFocus(1))
			return m, nil
		}
	case "esc":
		return m, tea.Quit
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and mirrors any value
// change into the form.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus < len(m.inputs):
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus == len(m.inputs):
		m.message, cmd = m.message.Update(msg)
	default:
		return m, nil
	}

	field := domain.Fields[m.focus]
	if value := m.value(m.focus); value != m.form.Data().Get(field) {
		_ = m.form.ApplyFieldChange(field, value)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	out, ok, err := m.form.BeginSubmit(domain.FormatSubmittedAt(m.now(), m.loc))
	if err != nil || !ok {
		return m, nil
	}

	ctx, dispatcher := m.ctx, m.dispatcher
	return m, func() tea.Msg {
		if dispatcher == nil {
			return submitResultMsg{err: domain.ErrEmailUnavailable}
		}
		return submitResultMsg{err: dispatcher.Dispatch(ctx, out)}
	}
}

// nextFocus walks dir steps through the focusable elements. While the
// name is blank only the name and the button can take focus.
func (m Model) nextFocus(dir int) int {
	locked := view.FieldsLocked(m.form.Data())
	n := focusSubmit + 1
	next := m.focus
	for range n {
		next = (next + dir + n) % n
		if !locked || next == 0 || next == focusSubmit {
			return next
		}
	}
	return m.focus
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	if i == len(m.inputs) {
		m.message.Focus()
	} else {
		m.message.Blur()
	}
}

func (m Model) value(i int) string {
	if i < len(m.inputs) {
		return m.inputs[i].Value()
	}
	return m.message.Value()
}

func (m *Model) clearInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Get In Touch"))
	b.WriteString("\n")

	if m.form.State() == domain.StateSubmitted {
		b.WriteString(m.styles.Success.Render("Message Sent Successfully!"))
		b.WriteString("\n\nThank you for reaching out. I'll get back to you within 24 hours.\n")
		b.WriteString(m.styles.Help.Render("enter: send another message • q: quit"))
		return b.String()
	}

	if notice := m.form.Notice(); notice != "" {
		b.WriteString(m.styles.Modal.Render(notice + "\n\npress enter to dismiss"))
		return b.String()
	}

	snap := m.form.Snapshot()
	page := view.NewContactPage(snap, nil)
	for i, f := range page.Fields {
		b.WriteString(m.styles.Label.Render(f.Label))
		b.WriteString("\n")
		switch {
		case f.Disabled:
			b.WriteString(m.styles.Locked.Render("  (enter your name first)"))
		case i < len(m.inputs):
			b.WriteString(m.inputs[i].View())
		default:
			b.WriteString(m.message.View())
		}
		b.WriteString("\n")
		if f.Error != "" {
			b.WriteString(m.styles.Error.Render(f.Error))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case page.Submitting:
		b.WriteString(m.styles.Disabled.Render("Sending..."))
	case m.focus == focusSubmit:
		b.WriteString(m.styles.Focused.Render("Send Message"))
	default:
		b.WriteString(m.styles.Button.Render("Send Message"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab/shift+tab: move • ctrl+s: send • esc: quit"))
	return b.String()
}

// Run starts the interactive form on the terminal and blocks until it quits.
func Run(ctx context.Context, dispatcher usecase.Dispatcher, opts ...Option) (Model, error) {
	final, err := tea.NewProgram(New(ctx, dispatcher, opts...), tea.WithContext(ctx)).Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}
