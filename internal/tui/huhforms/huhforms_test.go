package huhforms

import (
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pipeline/internal/config"
	"github.com/thenoetrevino/pipeline/internal/models"
)

// ============================================================================
// CANDIDATE FORM
// ============================================================================

func TestCreateCandidateForm_Fields(t *testing.T) {
	var draft models.CandidateFields
	form := CreateCandidateForm(&draft)
	require.NotNil(t, form)

	assert.NotNil(t, form.GetFocusedField())
	assert.Equal(t, huh.StateNormal, form.State)
}

func TestCreateCandidateForm_RendersDraft(t *testing.T) {
	draft := models.CandidateFields{Name: "Sam Lee"}
	form := CreateCandidateForm(&draft).WithWidth(60)
	form.Init()

	view := form.View()
	assert.Contains(t, view, "Add New Candidate")
	assert.Contains(t, view, "Sam Lee", "rebuilt forms show what was already typed")
}

// ============================================================================
// KEYMAP
// ============================================================================

func TestCandidateKeyMap(t *testing.T) {
	km := CandidateKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"notes new line", km.Text.NewLine, []string{"shift+enter", "alt+enter", "ctrl+j"}},
		{"next field", km.Input.Next, []string{"enter", "tab", "down"}},
		{"previous field", km.Input.Prev, []string{"shift+tab", "up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
		})
	}
}

// ============================================================================
// THEME
// ============================================================================

func TestCreatePipelineTheme(t *testing.T) {
	for _, scheme := range []config.ColorScheme{config.DefaultColorScheme(), config.MonochromeColorScheme()} {
		t.Run(scheme.Preset, func(t *testing.T) {
			styles := CreatePipelineTheme(scheme).Theme(true)
			require.NotNil(t, styles)
			assert.True(t, styles.Focused.Title.GetBold())
		})
	}
}
