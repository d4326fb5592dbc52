package tui

import (
	"github.com/AvengeMedia/artspace/internal/assets"
	"github.com/AvengeMedia/artspace/internal/config"
	"github.com/AvengeMedia/artspace/internal/gallery"
	"github.com/AvengeMedia/artspace/internal/log"
	"github.com/AvengeMedia/artspace/internal/render"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	Version string
	Session string
	Config  config.Config
}

// Model is the rendering layer around a gallery.Pager. It never caches pager
// state; every View polls the pager.
type Model struct {
	cfg    config.Config
	logger *log.Logger

	pager  *gallery.Pager
	cache  *render.Cache
	state  ApplicationState
	err    error
	styles Styles
	keys   keyMap
	help   help.Model

	focus       Button
	showTooltip bool
	width       int
	height      int

	dragging   bool
	dragStartX int
}

func NewModel(pager *gallery.Pager, opts Options) Model {
	m := Model{
		cfg:    opts.Config,
		logger: log.With("session", opts.Session),
		pager:  pager,
		cache:  render.NewCache(),
		state:  StateGallery,
		styles: NewStyles(GalleryTheme()),
		keys:   newKeyMap(),
		help:   help.New(),
		focus:  ButtonNext,
	}
	m.logger.Debug("viewer ready", "version", opts.Version, "artworks", pager.Catalog().Len(), "description_mode", opts.Config.DescriptionMode)
	m.prepare()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(assets.String(assets.AppName))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prepare()
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case StateError:
			return m.updateErrorState(msg)
		default:
			return m.updateGalleryState(msg)
		}
	case tea.MouseMsg:
		if m.cfg.Mouse && m.state == StateGallery {
			return m.updateMouse(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case StateError:
		return m.viewError()
	default:
		return m.viewGallery()
	}
}

// Pager exposes the navigation state driving this model.
func (m Model) Pager() *gallery.Pager {
	return m.pager
}

// navigate presses a navigation button. Presses on a disabled button are dropped.
func (m *Model) navigate(b Button) {
	from := m.pager.Index()
	switch b {
	case ButtonNext:
		m.pager.Next()
	case ButtonPrevious:
		m.pager.Previous()
	}

	if m.pager.Index() == from {
		m.logger.Debug("navigation ignored at boundary", "index", from)
		return
	}

	m.showTooltip = false
	m.logger.Debug("navigated", "from", from, "to", m.pager.Index(), "title", m.pager.Current().Title)
	m.prepare()
}

// prepare renders the current artwork ahead of View so that asset and decode
// failures surface as StateError instead of a blank screen.
func (m *Model) prepare() {
	_, err := m.cache.Asset(m.pager.Current().ImageRef, m.contentWidth(), m.cfg.ImageAlpha)
	if err != nil {
		m.logger.Error("failed to render artwork", "index", m.pager.Index(), "err", err)
		m.err = err
		m.state = StateError
		return
	}
	m.err = nil
	m.state = StateGallery
}

// contentWidth is the configured image width shrunk to fit the window.
func (m Model) contentWidth() int {
	w := m.cfg.ImageWidth
	if m.width > 0 && m.width-2*screenPaddingX < w {
		w = m.width - 2*screenPaddingX
	}
	if w < config.MinImageWidth {
		w = config.MinImageWidth
	}
	return w
}
