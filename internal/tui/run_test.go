package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProgram(t *testing.T, m Model) *teatest.TestModel {
	t.Helper()
	return teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))
}

func finalModel(t *testing.T, tm *teatest.TestModel) Model {
	t.Helper()
	fm, ok := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second)).(Model)
	require.True(t, ok, "final model has unexpected type")
	return fm
}

func TestProgramFilterAndOpen(t *testing.T) {
	tm := newTestProgram(t, New(testProjects("alpha", "beta", "alphabet"), WithPreviewStyle("notty")))

	tm.Type("alpha")
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Projects (1/2)"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter}) // leave editing
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter}) // open

	fm := finalModel(t, tm)
	res := fm.Result()
	assert.True(t, res.Open)
	assert.Equal(t, "/projects/alphabet", res.Project.Path)
	assert.Equal(t, []string{"alpha", "alphabet"}, filteredNames(fm))
}

func TestProgramQuitWithoutOpening(t *testing.T) {
	tm := newTestProgram(t, New(testProjects("alpha", "beta"), WithPreviewStyle("notty")))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Type("q")

	fm := finalModel(t, tm)
	assert.False(t, fm.Result().Open)
	assert.Equal(t, ModeNavigation, fm.Mode())
}

func TestProgramEmptyProjects(t *testing.T) {
	tm := newTestProgram(t, New(nil, WithPreviewStyle("notty")))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte(readmePlaceholder))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	fm := finalModel(t, tm)
	assert.True(t, fm.Selection().IsNone())
	assert.False(t, fm.Result().Open)
}
