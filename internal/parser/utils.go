package parser

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeLabel trims a cell label and collapses internal whitespace.
func NormalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return whitespaceRe.ReplaceAllString(s, " ")
}

// containsAny reports whether text contains any of the keywords.
// Keywords are expected lowercase; text must already be lowercased.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ContainsAnyFold is the case-insensitive variant for raw cell text.
func ContainsAnyFold(text string, keywords []string) bool {
	return containsAny(strings.ToLower(text), keywords)
}

// countHits counts the cells in a row for which match returns true.
func countHits(row []string, match func(string) bool) int {
	n := 0
	for _, cell := range row {
		if match(cell) {
			n++
		}
	}
	return n
}

// findHeaderRow scans the first maxRows rows for the first row with at
// least threshold matching cells. Returns -1 when none qualifies.
func findHeaderRow(rows [][]string, maxRows, threshold int, match func(string) bool) int {
	limit := len(rows)
	if limit > maxRows {
		limit = maxRows
	}
	for r := 0; r < limit; r++ {
		if countHits(rows[r], match) >= threshold {
			return r
		}
	}
	return -1
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a stable identifier from an activity name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
