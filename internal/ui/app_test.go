package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johannes-Berggren/goblin-prune/internal/models"
)

func newTestModel(list *models.BranchList) Model {
	m := NewModel(list, DefaultKeyMap(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func manyRefs(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%040d\trefs/heads/topic/hez/b%02d\n", i, i)
	}
	return b.String()
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(testList())
	assert.Equal(t, 23, m.Controller().VisibleRows())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 1})
	assert.Equal(t, 1, updated.(Model).Controller().VisibleRows())
}

func TestModel_CommitFlow(t *testing.T) {
	m := newTestModel(testList())

	m, cmd := press(t, m, runeKey(" "), runeKey("j"), runeKey("j"), runeKey("s"))
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "[x] topic/hez/one")
	assert.Contains(t, m.View(), "[x] topic/hez/three")

	m, _ = press(t, m, runeKey("d"))
	require.Equal(t, ModeConfirmingDeletion, m.Mode())
	assert.Contains(t, m.View(), "Delete 2 branch(es)?")

	m, cmd = press(t, m, runeKey("a"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ModeCommitting, m.Mode())
	assert.Equal(t, []string{"topic/hez/one", "topic/hez/three"}, m.Staged())
	assert.Empty(t, m.View())
}

func TestModel_DeleteWithoutSelectionStaysBrowsing(t *testing.T) {
	m := newTestModel(testList())

	m, cmd := press(t, m, runeKey("d"))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, ModeBrowsing, m.Mode())
	assert.NotContains(t, m.View(), "Delete")
}

func TestModel_AbortConfirmation(t *testing.T) {
	m := newTestModel(testList())

	m, _ = press(t, m, runeKey(" "), runeKey("d"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeBrowsing, m.Mode())
	assert.Equal(t, 1, m.Controller().List().SelectedCount())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(testList())

	m, cmd := press(t, m, runeKey(" "), runeKey("q"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ModeAborted, m.Mode())
	assert.Nil(t, m.Staged())
}

func TestModel_QuitWhileConfirming(t *testing.T) {
	m := newTestModel(testList())

	m, cmd := press(t, m, runeKey(" "), runeKey("d"), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ModeAborted, m.Mode())
}

func TestModel_ProtectedNotSelectable(t *testing.T) {
	m := newTestModel(testList())

	m, _ = press(t, m, runeKey("j"), runeKey(" "), runeKey(" "), runeKey(" "))
	assert.Equal(t, 0, m.Controller().List().SelectedCount())
	assert.Contains(t, m.View(), "[ ] topic/hez/two-keep")
}

func TestModel_EmptyList(t *testing.T) {
	m := newTestModel(models.BuildBranchList(testRefs, "release/", "-keep"))

	m, cmd := press(t, m, runeKey("j"), runeKey(" "), runeKey("d"))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, ModeBrowsing, m.Mode())
	assert.Contains(t, m.View(), `no remote branches match "release/"`)
}

func TestModel_ScrollsViewport(t *testing.T) {
	m := NewModel(models.BuildBranchList(manyRefs(20), "topic/hez", "-keep"), DefaultKeyMap(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	m = updated.(Model)

	for i := 0; i < 7; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 7, m.Controller().Cursor().Current())
	assert.Equal(t, 3, m.Controller().Cursor().Top())

	view := m.View()
	assert.Contains(t, view, "topic/hez/b03")
	assert.Contains(t, view, "topic/hez/b07")
	assert.NotContains(t, view, "topic/hez/b02")
	assert.NotContains(t, view, "topic/hez/b08")
	assert.Len(t, strings.Split(view, "\n"), 6)
}

func TestModel_TruncatesRows(t *testing.T) {
	m := newTestModel(testList())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 12, Height: 10})
	m = updated.(Model)

	for _, line := range strings.Split(m.renderList(), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 12)
	}
}
