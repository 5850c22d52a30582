package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pipeline/internal/models"
	"github.com/thenoetrevino/pipeline/internal/tui/components"
)

func viewText(m Model) string {
	return ansi.Strip(m.View().Content)
}

func TestView_LoadingBeforeResize(t *testing.T) {
	m := InitialModel(t.Context(), setupTestModel(t).App, nil)
	assert.Equal(t, "Loading...", m.View().Content)
}

func TestView_ModeFlags(t *testing.T) {
	m := setupTestModel(t)
	v := m.View()
	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)

	m.Config.DisableMouse = true
	assert.Equal(t, tea.MouseModeNone, m.View().MouseMode)
}

func TestView_BoardContents(t *testing.T) {
	out := viewText(setupTestModel(t))

	assert.Contains(t, out, models.BoardTitle)
	assert.Contains(t, out, "Total Candidates: 7")
	for _, title := range []string{"Applied (3)", "Screening (2)", "Interview (1)", "Hired (1)"} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "Alex Johnson")
	assert.Contains(t, out, "Riley Thompson")
	assert.Contains(t, out, "press ? for help")
}

func TestView_EmptyColumnMessage(t *testing.T) {
	m := setupTestModel(t)
	require.NoError(t, m.App.CandidateService.DeleteCandidate("6", models.ColumnInterview))

	out := viewText(m)
	assert.Contains(t, out, "Interview (0)")
	assert.Contains(t, out, models.EmptyColumnMessage)
}

func TestView_UpdatesAfterMove(t *testing.T) {
	m := press(t, setupTestModel(t), "l", "l", "m", "l", "enter")

	out := viewText(m)
	assert.Contains(t, out, "Interview (0)")
	assert.Contains(t, out, "Hired (2)")
	assert.Contains(t, out, "Total Candidates: 7")
}

func TestView_Layers(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"delete confirm", []string{"j", "d"}, []string{"Confirm Deletion", "Jamie", "cannot be undone"}},
		{"menu", []string{"."}, []string{"Actions", "Email Candidate", "View Resume", "Add to Favorites", "Delete"}},
		{"help", []string{"?"}, []string{"CANDIDATES", "MOVING", "NAVIGATION"}},
		{"detail", []string{"v"}, []string{"alex.j@university.edu", "Tech University"}},
		{"add form", []string{"a"}, []string{"Add New Candidate", components.FormFooter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := viewText(press(t, setupTestModel(t), tt.keys...))
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestView_ModalKeepsBoardUnderneath(t *testing.T) {
	out := viewText(press(t, setupTestModel(t), "j", "d"))
	assert.Contains(t, out, models.BoardTitle)
	assert.Contains(t, out, "Total Candidates: 7")
}

func TestView_FormShowsRejection(t *testing.T) {
	m := press(t, setupTestModel(t), "a", "ctrl+s")
	assert.Contains(t, viewText(m), "Please fill in: name, email, role and university")
}

func TestView_ActiveFilter(t *testing.T) {
	m := press(t, setupTestModel(t), "/")
	m = typeText(t, m, "patel")

	searching := viewText(m)
	assert.Contains(t, searching, "/patel")

	m = press(t, m, "enter")
	out := viewText(m)
	assert.Contains(t, out, "filter: patel")
	assert.Contains(t, out, "Applied (3)", "counts reflect the full board")
	assert.Contains(t, out, "No matching candidates")
	assert.NotContains(t, out, "Alex Johnson")
}

func TestView_DragHint(t *testing.T) {
	m := press(t, setupTestModel(t), "m")
	assert.Contains(t, viewText(m), "h/l: choose column")
}

func TestView_ColumnsFitWidth(t *testing.T) {
	m := setupTestModel(t)
	for i, line := range strings.Split(viewText(m), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), testWidth, "line %d", i)
	}
}

func TestView_NarrowShowsIndicators(t *testing.T) {
	m := setupTestModel(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: testHeight})
	out := viewText(m)
	assert.Contains(t, out, "▶")
	assert.NotContains(t, out, "Hired (1)")

	m = press(t, m, "]", "]")
	out = viewText(m)
	assert.Contains(t, out, "◀")
	assert.Contains(t, out, "Hired (1)")
}
