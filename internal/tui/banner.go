package tui

import (
	"github.com/AvengeMedia/artspace/internal/assets"
	"github.com/charmbracelet/lipgloss"
)

// renderBanner draws the dimmed top bar image with the app name beneath it.
func (m Model) renderBanner() string {
	width := m.contentWidth()
	name := m.styles.AppName.Width(width).Render(assets.String(assets.AppName))

	bar, err := m.cache.Asset(assets.TopBar, width, 0.5)
	if err != nil {
		m.logger.Warn("failed to render top bar", "err", err)
		return name
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, name)
}
