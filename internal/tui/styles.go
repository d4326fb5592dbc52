package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

type AppTheme struct {
	Primary    string
	Secondary  string
	Text       string
	Subtle     string
	Disabled   string
	Error      string
	Background string
}

// GalleryTheme is light gray on black with dark gray for disabled controls.
func GalleryTheme() AppTheme {
	return AppTheme{
		Primary:    "#d3d3d3",
		Secondary:  "#5a5a5a",
		Text:       "#d3d3d3",
		Subtle:     "#888888",
		Disabled:   "#444444",
		Error:      "#ffb4ab",
		Background: "#000000",
	}
}

func NewStyles(theme AppTheme) Styles {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	return Styles{
		Screen: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Background)).
			Padding(1, 2),

		AppName: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			Strikethrough(true).
			Align(lipgloss.Center),

		Caption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Align(lipgloss.Center).
			MarginTop(1),

		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Align(lipgloss.Center),

		Tooltip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)).
			Background(lipgloss.Color(theme.Background)).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Secondary)).
			Align(lipgloss.Center),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Button: button.
			Foreground(lipgloss.Color(theme.Text)).
			BorderForeground(lipgloss.Color(theme.Secondary)),

		FocusedButton: button.
			Foreground(lipgloss.Color(theme.Text)).
			BorderForeground(lipgloss.Color(theme.Primary)).
			Bold(true),

		DisabledButton: button.
			Foreground(lipgloss.Color(theme.Disabled)).
			BorderForeground(lipgloss.Color(theme.Disabled)),
	}
}

type Styles struct {
	Screen         lipgloss.Style
	AppName        lipgloss.Style
	Caption        lipgloss.Style
	Description    lipgloss.Style
	Tooltip        lipgloss.Style
	Subtle         lipgloss.Style
	Error          lipgloss.Style
	Button         lipgloss.Style
	FocusedButton  lipgloss.Style
	DisabledButton lipgloss.Style
}

// NewThemedProgress returns the position bar shown under the artwork.
func (s Styles) NewThemedProgress(width int) progress.Model {
	theme := GalleryTheme()
	prog := progress.New(
		progress.WithGradient(theme.Secondary, theme.Primary),
		progress.WithoutPercentage(),
	)
	prog.Width = width
	return prog
}
