package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#6b7280")
)

// Styles groups the lipgloss styles used by the contact form.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Locked   lipgloss.Style
	Error    lipgloss.Style
	Button   lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
	Modal    lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Label:    lipgloss.NewStyle().Bold(true),
		Locked:   lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(destructive),
		Button:   lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()),
		Focused:  lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(accent).Bold(true),
		Disabled: lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).Foreground(muted),
		Modal:    lipgloss.NewStyle().Padding(1, 3).Border(lipgloss.DoubleBorder()).BorderForeground(destructive),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Help:     lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}
