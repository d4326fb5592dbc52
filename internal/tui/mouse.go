package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// swipeThreshold is the horizontal distance, in cells, that turns a press
// and release into a swipe rather than a click.
const swipeThreshold = 3

// updateMouse handles swipes and button clicks. Dragging left advances,
// dragging right goes back.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.dragging = true
		m.dragStartX = msg.X
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false

		dx := msg.X - m.dragStartX
		switch {
		case dx <= -swipeThreshold:
			m.navigate(ButtonNext)
		case dx >= swipeThreshold:
			m.navigate(ButtonPrevious)
		default:
			m = m.click(msg.X, msg.Y)
		}
	}
	return m, nil
}

func (m Model) click(x, y int) Model {
	l := m.buildGalleryLayout()
	switch {
	case l.previous.contains(x, y):
		m.focus = ButtonPrevious
		m.navigate(ButtonPrevious)
	case l.next.contains(x, y):
		m.focus = ButtonNext
		m.navigate(ButtonNext)
	case l.image.contains(x, y):
		m = m.toggleTooltip()
	}
	return m
}
