package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Error.Render("Could not display artwork " + m.pager.Position()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Use ←/→ to move to another artwork, q to quit"))

	return m.styles.Screen.Render(b.String())
}

func (m Model) updateErrorState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.navigate(ButtonNext)
	case key.Matches(msg, m.keys.Previous):
		m.navigate(ButtonPrevious)
	}
	return m, nil
}
