package tui

import (
	"fmt"
	"strings"
)

// helpText renders the keyboard shortcuts using the configured key mappings
func (m Model) helpText() string {
	km := m.Config.KeyMappings
	row := func(key, desc string) string {
		return fmt.Sprintf("  %-7s %s", key, desc)
	}

	sections := []string{
		"PIPELINE - Keyboard Shortcuts",
		"",
		"CANDIDATES",
		row(km.AddCandidate, "Add new candidate"),
		row(km.DeleteCandidate, "Delete selected candidate"),
		row(km.ViewCandidate, "View candidate details"),
		row(km.OpenMenu, "Open card actions (also enter)"),
		"",
		"MOVING",
		row(km.GrabCandidate, "Pick up selected card"),
		row(km.PrevColumn+"/"+km.NextColumn, "Choose target column"),
		row(km.DropCandidate, "Drop card"),
		row("esc", "Cancel move"),
		row("mouse", "Drag a card onto a column"),
		"",
		"NAVIGATION",
		row(km.PrevColumn, "Move to previous column"),
		row(km.NextColumn, "Move to next column"),
		row(km.PrevCandidate, "Move to previous candidate"),
		row(km.NextCandidate, "Move to next candidate"),
		row(km.ScrollViewportLeft, "Scroll viewport left"),
		row(km.ScrollViewportRight, "Scroll viewport right"),
		"",
		"FORMS",
		row(km.SaveForm, "Save the new candidate"),
		row("esc", "Discard and close"),
		"",
		"OTHER",
		row(km.Search, "Search by name, role or university"),
		row(km.ShowHelp, "Show this help screen"),
		row(km.Quit, "Quit application"),
		"",
		"Press esc to close",
	}
	return strings.Join(sections, "\n")
}
