package candidate

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/thenoetrevino/pipeline/internal/models"
)

// minFuzzyLen is the shortest query word, in runes, that is matched by edit distance
const minFuzzyLen = 3

// Filter returns a copy of b containing only candidates matching query.
// Every word of the query must match the candidate's name, role or
// university, either as a substring or within a small edit distance of one
// of their words. An empty query returns b unchanged.
func Filter(b models.Board, query string) models.Board {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return b
	}

	columns := make([]models.Column, len(b.Columns))
	for i, col := range b.Columns {
		kept := make([]models.Candidate, 0, len(col.Candidates))
		for _, c := range col.Candidates {
			if Matches(c, terms) {
				kept = append(kept, c)
			}
		}
		columns[i] = models.Column{ID: col.ID, Title: col.Title, Candidates: kept}
	}
	return models.Board{Columns: columns}
}

// Matches reports whether every lower-cased term matches the candidate
func Matches(c models.Candidate, terms []string) bool {
	haystack := strings.ToLower(strings.Join([]string{c.Name, c.Role, c.University}, " "))
	words := strings.Fields(haystack)

	for _, term := range terms {
		if strings.Contains(haystack, term) {
			continue
		}
		if !fuzzyMatch(term, words) {
			return false
		}
	}
	return true
}

func fuzzyMatch(term string, words []string) bool {
	if utf8.RuneCountInString(term) < minFuzzyLen {
		return false
	}
	for _, w := range words {
		if levenshtein.ComputeDistance(term, w) <= maxDistance(term) {
			return true
		}
	}
	return false
}

// maxDistance allows one typo in short words and two in longer ones
func maxDistance(term string) int {
	if utf8.RuneCountInString(term) >= 6 {
		return 2
	}
	return 1
}
