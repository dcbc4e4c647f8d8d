package controls

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/focusflow/internal/session"
)

func (m *Model) tabsView(st styles) string {
	tabs := make([]string, 0, len(session.Kinds))

	for _, k := range session.Kinds {
		style := st.tab
		if k == m.frame.Session {
			style = st.activeTab
		}

		tabs = append(tabs, style.Render(k.Label()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) timerView(st styles) string {
	var s strings.Builder

	s.WriteString(m.tabsView(st))
	s.WriteString("\n\n")
	s.WriteString(st.clock.Render(m.frame.Clock))

	if !m.frame.Running && m.frame.Remaining > 0 && m.frame.Remaining < m.frame.Duration {
		s.WriteString(st.hint.Render(" [Paused]"))
	}

	m.progress.FullColor = string(sessionColors[m.frame.Session])

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.frame.Elapsed()))
	s.WriteString("\n")
	s.WriteString(st.button.Render(m.StartLabel()))
	s.WriteString("\n")
	s.WriteString(st.hint.Render(fmt.Sprintf(
		"Today: %s  Sessions: %d",
		m.summary.TodayText,
		m.summary.Total,
	)))

	return s.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	st := newStyles(m.frame.Session)

	view := m.timerView(st)

	if !m.hidden && m.form != nil {
		view += "\n" + st.panel.Render(m.form.View())
		view += "\n\n" + m.help.ShortHelpView([]key.Binding{m.keys.esc})
	} else {
		view += "\n\n" + m.help.ShortHelpView(m.keys.shortHelp())
	}

	return st.base.Render(view)
}
