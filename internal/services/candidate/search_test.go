package candidate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/pipeline/internal/board"
	"github.com/thenoetrevino/pipeline/internal/models"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  map[models.ColumnID][]string
	}{
		{
			name:  "substring on role",
			query: "developer",
			want: map[models.ColumnID][]string{
				models.ColumnApplied:   {"1"},
				models.ColumnScreening: {"4", "5"},
				models.ColumnInterview: {},
				models.ColumnHired:     {"7"},
			},
		},
		{
			name:  "typo in name",
			query: "jordn",
			want: map[models.ColumnID][]string{
				models.ColumnApplied:   {},
				models.ColumnScreening: {},
				models.ColumnInterview: {"6"},
				models.ColumnHired:     {},
			},
		},
		{
			name:  "every term must match",
			query: "tech frontend",
			want: map[models.ColumnID][]string{
				models.ColumnApplied:   {"1"},
				models.ColumnScreening: {},
				models.ColumnInterview: {},
				models.ColumnHired:     {},
			},
		},
		{
			name:  "case insensitive",
			query: "STATE",
			want: map[models.ColumnID][]string{
				models.ColumnApplied:   {"3"},
				models.ColumnScreening: {},
				models.ColumnInterview: {},
				models.ColumnHired:     {"7"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(board.Seed(), tt.query)
			for id, want := range tt.want {
				assert.Equal(t, want, columnIDs(filtered, id), "column %s", id)
			}
		})
	}
}

func TestFilter_EmptyQueryKeepsBoard(t *testing.T) {
	b := board.Seed()
	assert.Equal(t, b, Filter(b, "   "))
}

func TestFilter_DoesNotChangeStore(t *testing.T) {
	svc := newTestService(t)

	filtered := svc.FilteredBoard("riley")

	assert.Equal(t, 1, filtered.TotalCount())
	assert.Equal(t, 7, svc.TotalCount())
}

func TestMatches_ShortTermsNeedSubstring(t *testing.T) {
	c := models.Candidate{Name: "Alex Johnson", Role: "Frontend Developer", University: "Tech University"}

	assert.True(t, Matches(c, []string{"al"}))
	assert.False(t, Matches(c, []string{"zq"}))
}

func TestMatches_ShortAccentedTermsNeedSubstring(t *testing.T) {
	c := models.Candidate{Name: "Éa Moreau", Role: "QA", University: "Université Laval"}

	assert.True(t, Matches(c, []string{"éa"}))
	// Two runes but three bytes: still too short for a fuzzy match
	assert.False(t, Matches(c, []string{"éx"}))
	// Long enough in runes, one typo away from "université"
	assert.True(t, Matches(c, []string{"univérsité"}))
}

func TestMaxDistance_CountsRunes(t *testing.T) {
	tests := []struct {
		term string
		want int
	}{
		{"lava", 1},
		{"ééééé", 1},
		{"résumé", 2},
		{"developer", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maxDistance(tt.term), "term %q", tt.term)
	}
}
