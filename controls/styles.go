package controls

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusflow/internal/session"
)

const (
	padding  = 2
	maxWidth = 80
)

var sessionColors = map[session.Kind]lipgloss.Color{
	session.Focus:      lipgloss.Color("#B0DB43"),
	session.ShortBreak: lipgloss.Color("#12EAEA"),
	session.LongBreak:  lipgloss.Color("#C492B1"),
}

type styles struct {
	base      lipgloss.Style
	clock     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	button    lipgloss.Style
	hint      lipgloss.Style
	panel     lipgloss.Style
}

func newStyles(kind session.Kind) styles {
	c := sessionColors[kind]

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		clock:     lipgloss.NewStyle().Bold(true).Foreground(c),
		tab:       lipgloss.NewStyle().Padding(0, 1).Faint(true),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#000000")).Background(c),
		button:    lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(c),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7D7D7D")),
		panel:     lipgloss.NewStyle().MarginTop(1).Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(c),
	}
}
