package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles for the kiosk screens
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Locked   lipgloss.Style
	Card     lipgloss.Style
	Bar      lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("183")). // Lavender
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Option: lipgloss.NewStyle().
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("61")),
		Locked: lipgloss.NewStyle().
			Faint(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("61")).
			Padding(1, 2),
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}
