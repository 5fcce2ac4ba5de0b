package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Johannes-Berggren/goblin-prune/internal/logging"
	"github.com/Johannes-Berggren/goblin-prune/internal/models"
)

// defaultRows is used until the first WindowSizeMsg arrives.
const defaultRows = 23

// Model hosts a Controller inside a bubbletea program. Every key press is
// applied to the controller before the next frame is rendered.
type Model struct {
	ctrl   *Controller
	keys   KeyMap
	help   help.Model
	log    *logging.Logger
	width  int
	height int
}

func NewModel(list *models.BranchList, keys KeyMap, log *logging.Logger) Model {
	if log == nil {
		log = logging.Nop()
	}

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = statusStyle.Bold(true)
	h.Styles.ShortDesc = statusStyle
	h.Styles.ShortSeparator = statusStyle

	return Model{
		ctrl: NewController(list, defaultRows),
		keys: keys,
		help: h,
		log:  log,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		prev := m.ctrl.Mode()
		ev := m.keys.Resolve(prev, msg)
		next := m.ctrl.Handle(ev)
		if next != prev {
			m.log.Debug("mode %s -> %s (key %q, %d selected)", prev, next, msg.String(), m.ctrl.List().SelectedCount())
		}
		if next.Terminal() {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctrl.Resize(max(msg.Height-1, 1))
	}

	return m, nil
}

func (m Model) View() string {
	if m.ctrl.Mode().Terminal() {
		return ""
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderList(),
		m.renderStatus(),
	)
}

// Mode returns the mode the session is in, terminal once the program exited.
func (m Model) Mode() Mode {
	return m.ctrl.Mode()
}

// Staged returns the names to delete after a committed session.
func (m Model) Staged() []string {
	return m.ctrl.Staged()
}

// Controller exposes the session state, mainly for tests.
func (m Model) Controller() *Controller {
	return m.ctrl
}
