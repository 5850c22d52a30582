package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pipeline/internal/config"
	"github.com/thenoetrevino/pipeline/internal/models"
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

func plain(s string) string {
	return ansi.Strip(s)
}

func sampleCandidate() models.Candidate {
	return models.Candidate{
		ID:         "1",
		Name:       "Alex Johnson",
		Email:      "alex.johnson@example.com",
		Role:       "Frontend Developer",
		University: "Stanford University",
		Avatar:     models.DefaultAvatar,
		Notes:      "Strong React skills, previous internship at Google",
	}
}

// ============================================================================
// Card
// ============================================================================

func TestRenderCard_FixedSize(t *testing.T) {
	tests := []struct {
		name      string
		candidate models.Candidate
		selected  bool
	}{
		{name: "with notes", candidate: sampleCandidate()},
		{name: "selected", candidate: sampleCandidate(), selected: true},
		{name: "no notes", candidate: models.Candidate{ID: "2", Name: "Sam Lee", Role: "QA", University: "X Univ"}},
		{
			name: "long fields",
			candidate: models.Candidate{
				ID:         "3",
				Name:       "Maximiliana Alexandra Konstantinopoulou-Whitmore",
				Role:       strings.Repeat("Senior ", 10),
				University: strings.Repeat("University ", 10),
				Notes:      strings.Repeat("word ", 40),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := RenderCard(CardProps{Candidate: tt.candidate, Selected: tt.selected})
			lines := strings.Split(card, "\n")
			assert.Len(t, lines, CardHeight)
			for _, line := range lines {
				assert.Equal(t, CardWidth, lipgloss.Width(line), "line %q", plain(line))
			}
		})
	}
}

func TestRenderCard_Content(t *testing.T) {
	card := plain(RenderCard(CardProps{Candidate: sampleCandidate()}))

	assert.Contains(t, card, "AJ")
	assert.Contains(t, card, "Alex Johnson")
	assert.Contains(t, card, "Frontend Developer")
	assert.Contains(t, card, "Stanford University")
	assert.Contains(t, card, "Strong React skills")
}

func TestRenderCard_NoNotesPlaceholder(t *testing.T) {
	c := sampleCandidate()
	c.Notes = "   "
	card := plain(RenderCard(CardProps{Candidate: c}))
	assert.Contains(t, card, "no notes")
}

func TestRenderCard_TruncatesWithEllipsis(t *testing.T) {
	c := sampleCandidate()
	c.Role = strings.Repeat("x", CardTextWidth*2)
	card := plain(RenderCard(CardProps{Candidate: c}))
	assert.Contains(t, card, "…")
	assert.NotContains(t, card, strings.Repeat("x", CardTextWidth+1))
}

// ============================================================================
// Column
// ============================================================================

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		column   models.Column
		count    int
		wantText string
	}{
		{name: "empty column", column: models.Column{ID: models.ColumnApplied, Title: "Applied"}, count: 0, wantText: "Applied (0)"},
		{name: "single", column: models.Column{ID: models.ColumnHired, Title: "Hired"}, count: 1, wantText: "Hired (1)"},
		{name: "title from id", column: models.Column{ID: models.ColumnScreening}, count: 42, wantText: "Screening (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantText, plain(renderColumnHeader(tt.column, tt.count)))
		})
	}
}

func TestRenderScrollIndicator(t *testing.T) {
	assert.Contains(t, plain(renderScrollIndicator(true, "▲ more above")), "▲ more above")
	assert.Equal(t, "", renderScrollIndicator(false, "▲ more above"))
}

func TestRenderColumn_EmptyState(t *testing.T) {
	col := models.Column{ID: models.ColumnHired, Title: "Hired"}
	out := plain(RenderColumn(ColumnProps{Column: col, Height: 20}))

	assert.Contains(t, out, "Hired (0)")
	assert.Contains(t, out, models.EmptyColumnMessage)
}

func TestRenderColumn_CustomEmptyMessage(t *testing.T) {
	col := models.Column{ID: models.ColumnHired, Title: "Hired"}
	out := plain(RenderColumn(ColumnProps{Column: col, Count: 1, Height: 20, EmptyMessage: "No matches"}))

	assert.Contains(t, out, "Hired (1)")
	assert.Contains(t, out, "No matches")
	assert.NotContains(t, out, models.EmptyColumnMessage)
}

func TestRenderColumn_Geometry(t *testing.T) {
	col := models.Column{ID: models.ColumnApplied, Title: "Applied"}
	for i := range 5 {
		c := sampleCandidate()
		c.ID = string(rune('a' + i))
		col.Candidates = append(col.Candidates, c)
	}

	const height = 30
	out := RenderColumn(ColumnProps{Column: col, Count: 5, Height: height})
	lines := strings.Split(out, "\n")

	require.Len(t, lines, height)
	for _, line := range lines {
		assert.Equal(t, ColumnWidth, lipgloss.Width(line))
	}

	// The first card starts right after the header and indicator lines
	assert.Contains(t, plain(lines[CardsTop]), "╭")
	assert.Contains(t, plain(lines[CardsTop+1]), "Alex Johnson")
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	col := models.Column{ID: models.ColumnApplied, Title: "Applied"}
	for i := range 6 {
		c := sampleCandidate()
		c.ID = string(rune('a' + i))
		col.Candidates = append(col.Candidates, c)
	}

	const height = 20 // room for two cards
	require.Equal(t, 2, VisibleCards(height))

	top := plain(RenderColumn(ColumnProps{Column: col, Count: 6, Height: height}))
	assert.NotContains(t, top, "more above")
	assert.Contains(t, top, "more below")

	middle := plain(RenderColumn(ColumnProps{Column: col, Count: 6, Height: height, ScrollOffset: 2}))
	assert.Contains(t, middle, "more above")
	assert.Contains(t, middle, "more below")

	bottom := plain(RenderColumn(ColumnProps{Column: col, Count: 6, Height: height, ScrollOffset: 4}))
	assert.Contains(t, bottom, "more above")
	assert.NotContains(t, bottom, "more below")
}

func TestVisibleCards(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{height: 0, want: 1},
		{height: 10, want: 1},
		{height: 17, want: 2},
		{height: 29, want: 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VisibleCards(tt.height), "height %d", tt.height)
	}
}

// ============================================================================
// Layout hit-testing
// ============================================================================

func TestColumnAt(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		wantIdx int
		wantOk  bool
	}{
		{name: "margin", x: 0, wantOk: false},
		{name: "first column left edge", x: BoardMargin, wantIdx: 0, wantOk: true},
		{name: "first column right edge", x: BoardMargin + ColumnWidth - 1, wantIdx: 0, wantOk: true},
		{name: "gap", x: BoardMargin + ColumnWidth, wantOk: false},
		{name: "second column", x: ColumnX(1) + 3, wantIdx: 1, wantOk: true},
		{name: "past last visible", x: ColumnX(4), wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := ColumnAt(tt.x, 4)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestCardAt(t *testing.T) {
	_, ok := CardAt(0, 3)
	assert.False(t, ok, "border line")

	idx, ok := CardAt(CardY(0), 3)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = CardAt(CardY(2)+CardHeight-1, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = CardAt(CardY(3), 3)
	assert.False(t, ok, "below last visible card")
}

func TestColumnPitchMatchesRenderedWidth(t *testing.T) {
	col := RenderColumn(ColumnProps{Column: models.Column{ID: models.ColumnApplied}, Height: 10})
	assert.Equal(t, ColumnWidth, lipgloss.Width(col))
}

// ============================================================================
// Dialogs
// ============================================================================

func TestRenderDeleteConfirm(t *testing.T) {
	out := plain(RenderDeleteConfirm(ConfirmProps{Name: "Jamie Smith", Width: 80}))

	assert.Contains(t, out, "Confirm Deletion")
	assert.Contains(t, out, "Are you sure you want to delete Jamie Smith?")
	assert.Contains(t, out, "This action cannot be undone.")
	assert.Contains(t, out, "Cancel")
	assert.Contains(t, out, "Delete")
}

func TestDeletePrompt(t *testing.T) {
	assert.Equal(t,
		"Are you sure you want to delete Alex Johnson? This action cannot be undone.",
		DeletePrompt("Alex Johnson"))
}

func TestRenderCardMenu(t *testing.T) {
	items := []string{"Email Candidate", "View Resume", "Add to Favorites", "Delete"}
	out := plain(RenderCardMenu(MenuProps{Items: items, Cursor: 1}))

	for _, item := range items {
		assert.Contains(t, out, item)
	}
	assert.Contains(t, out, "> View Resume")
	assert.NotContains(t, out, "> Email Candidate")
}

func TestRenderDetail(t *testing.T) {
	out := plain(RenderDetail(DetailProps{Candidate: sampleCandidate(), Column: models.ColumnApplied, Width: 70}))

	assert.Contains(t, out, "Alex Johnson")
	assert.Contains(t, out, "alex.johnson@example.com")
	assert.Contains(t, out, "Applied")
	assert.Contains(t, out, "Strong React skills")
}

func TestRenderNotes_Empty(t *testing.T) {
	assert.Equal(t, "No notes", plain(RenderNotes("  ", 40)))
}

// ============================================================================
// Header and status bar
// ============================================================================

func TestRenderHeader(t *testing.T) {
	out := plain(RenderHeader(HeaderProps{Total: 7, Width: 100}))
	assert.Contains(t, out, "Internship Hiring Pipeline")
	assert.Contains(t, out, "Total Candidates: 7")
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestRenderHeader_WithNotificationAndFilter(t *testing.T) {
	out := plain(RenderHeader(HeaderProps{Total: 7, Width: 100, Notification: "saved", Filter: "react"}))
	assert.Contains(t, out, "saved")
	assert.Contains(t, out, "filter: react")
}

func TestRenderStatusBar(t *testing.T) {
	out := plain(RenderStatusBar(StatusBarProps{Width: 80}))
	assert.Contains(t, out, "press ? for help")
	assert.Equal(t, 80, lipgloss.Width(out))

	search := plain(RenderStatusBar(StatusBarProps{Width: 80, SearchMode: true, SearchQuery: "ale"}))
	assert.Contains(t, search, "/ale")
}
