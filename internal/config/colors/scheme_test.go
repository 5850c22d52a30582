package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsFromPreset(t *testing.T) {
	c := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	c.ApplyDefaults()

	mono := Monochrome()
	assert.Equal(t, "#123456", c.Accent)
	assert.Equal(t, mono.Delete, c.Delete)
	assert.Equal(t, mono.DropTarget, c.DropTarget)
	assert.Equal(t, mono.StatusBarText, c.StatusBarText)
}

func TestApplyDefaults_EmptyPresetIsDefault(t *testing.T) {
	var c ColorScheme
	c.ApplyDefaults()
	assert.Equal(t, *Default(), c)
}

func TestMergeFrom(t *testing.T) {
	c := *Default()
	c.MergeFrom(ColorScheme{Accent: "#FF0000"})

	assert.Equal(t, "#FF0000", c.Accent)
	assert.Equal(t, Default().Create, c.Create)
}

func TestMergeFrom_SwitchesPreset(t *testing.T) {
	c := *Default()
	c.MergeFrom(ColorScheme{Preset: "monochrome", Title: "#ABCDEF"})

	assert.Equal(t, "monochrome", c.Preset)
	assert.Equal(t, Monochrome().Accent, c.Accent)
	assert.Equal(t, "#ABCDEF", c.Title)
}

func TestGetPreset(t *testing.T) {
	assert.Equal(t, "default", GetPreset("").Preset)
	assert.Equal(t, "default", GetPreset("nope").Preset)
	assert.Equal(t, "monochrome", GetPreset("monochrome").Preset)
	assert.True(t, IsPreset("monochrome"))
	assert.False(t, IsPreset("nope"))
}
