package tui

import (
	"strings"

	"github.com/AvengeMedia/artspace/internal/assets"
	"github.com/AvengeMedia/artspace/internal/config"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	screenPaddingX = 2
	screenPaddingY = 1
)

// zone is a rectangle in screen cells, end exclusive.
type zone struct {
	x0, y0, x1, y1 int
}

func (z zone) contains(x, y int) bool {
	return x >= z.x0 && x < z.x1 && y >= z.y0 && y < z.y1
}

// galleryLayout is the rendered gallery screen plus the hit zones mouse
// handling needs. Building it is deterministic for a given model.
type galleryLayout struct {
	body     string
	image    zone
	previous zone
	next     zone
}

func (m Model) buildGalleryLayout() galleryLayout {
	var (
		l     galleryLayout
		lines []string
	)
	width := m.contentWidth()
	current := m.pager.Current()

	add := func(block string) (top, bottom int) {
		top = screenPaddingY + len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		return top, screenPaddingY + len(lines)
	}

	add(m.renderBanner())
	add("")

	art, err := m.cache.Asset(current.ImageRef, width, m.cfg.ImageAlpha)
	if err != nil {
		art = m.styles.Error.Render(err.Error())
	}
	top, bottom := add(art)
	l.image = zone{x0: screenPaddingX, y0: top, x1: screenPaddingX + lipgloss.Width(art), y1: bottom}

	if m.cfg.DescriptionMode == config.DescriptionTooltip && m.showTooltip {
		add(m.styles.Tooltip.Width(width - 2).Render(current.Description))
	}

	add(m.styles.Caption.Width(width).Render(current.Title))
	if m.cfg.DescriptionMode == config.DescriptionInline {
		add(m.styles.Description.Width(width).Render(current.Description))
	}

	add("")
	add(m.renderPosition(width))
	add("")

	prev := m.renderButton(ButtonPrevious)
	next := m.renderButton(ButtonNext)
	gap := width - lipgloss.Width(prev) - lipgloss.Width(next)
	if gap < 1 {
		gap = 1
	}
	top, bottom = add(lipgloss.JoinHorizontal(lipgloss.Top, prev, strings.Repeat(" ", gap), next))
	l.previous = zone{x0: screenPaddingX, y0: top, x1: screenPaddingX + lipgloss.Width(prev), y1: bottom}
	nextStart := l.previous.x1 + gap
	l.next = zone{x0: nextStart, y0: top, x1: nextStart + lipgloss.Width(next), y1: bottom}

	add("")
	add(m.renderHelp())

	l.body = strings.Join(lines, "\n")
	return l
}

func (m Model) viewGallery() string {
	return m.styles.Screen.Render(m.buildGalleryLayout().body)
}

func (m Model) renderPosition(width int) string {
	label := " " + m.pager.Position()
	barWidth := width - lipgloss.Width(label)
	if barWidth < 1 {
		return m.styles.Subtle.Render(label)
	}
	bar := m.styles.NewThemedProgress(barWidth)
	return bar.ViewAs(m.pager.Progress()) + m.styles.Subtle.Render(label)
}

func (m Model) renderButton(b Button) string {
	var (
		label   string
		enabled bool
	)
	switch b {
	case ButtonPrevious:
		label = assets.String(assets.PreviousButton)
		enabled = m.pager.CanGoPrevious()
	case ButtonNext:
		label = assets.String(assets.NextButton)
		enabled = m.pager.CanGoNext()
	}

	switch {
	case !enabled:
		return m.styles.DisabledButton.Render(label)
	case m.focus == b:
		return m.styles.FocusedButton.Render(label)
	default:
		return m.styles.Button.Render(label)
	}
}

func (m Model) renderHelp() string {
	return m.help.View(m.keys)
}

func (m Model) buttonEnabled(b Button) bool {
	if b == ButtonNext {
		return m.pager.CanGoNext()
	}
	return m.pager.CanGoPrevious()
}

func (m Model) toggleTooltip() Model {
	if m.cfg.DescriptionMode == config.DescriptionTooltip {
		m.showTooltip = !m.showTooltip
	}
	return m
}

func (m Model) updateGalleryState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.navigate(ButtonNext)
	case key.Matches(msg, m.keys.Previous):
		m.navigate(ButtonPrevious)
	case key.Matches(msg, m.keys.Focus):
		m.focus = m.focus.other()
	case key.Matches(msg, m.keys.Press):
		if m.buttonEnabled(m.focus) {
			m.navigate(m.focus)
		}
	case key.Matches(msg, m.keys.Description):
		m = m.toggleTooltip()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
