package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Johannes-Berggren/goblin-prune/internal/models"
)

var (
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("1"))

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("3"))

	cursorSelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("1")).
				Background(lipgloss.Color("3"))

	protectedRowStyle = rowStyle.Faint(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func rowStyleFor(b *models.Branch, isCursor bool) lipgloss.Style {
	switch {
	case isCursor && b.Selected():
		return cursorSelectedRowStyle
	case isCursor:
		return cursorRowStyle
	case b.Selected():
		return selectedRowStyle
	case b.Protected():
		return protectedRowStyle
	default:
		return rowStyle
	}
}

func (m Model) renderList() string {
	list := m.ctrl.List()
	if list.Empty() {
		return emptyStyle.Render(fmt.Sprintf("no remote branches match %q", list.Filter()))
	}

	cursor := m.ctrl.Cursor()
	start, end := cursor.Window(list.Len(), m.ctrl.VisibleRows())

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		b := list.At(i)
		line := b.String()
		if m.width > 0 {
			line = ansi.Truncate(line, m.width, "…")
		}
		rows = append(rows, rowStyleFor(b, i == cursor.Current()).Render(line))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	if m.ctrl.Mode() == ModeConfirmingDeletion {
		n := m.ctrl.List().SelectedCount()
		prompt := statusStyle.Render(fmt.Sprintf("Delete %d branch(es)? ", n))
		abort := statusStyle.Render(" • other keys abort")
		return prompt + m.help.ShortHelpView(m.keys.ConfirmHelp()) + abort
	}
	return m.help.ShortHelpView(m.keys.BrowseHelp())
}
