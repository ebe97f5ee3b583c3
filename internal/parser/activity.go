package parser

import (
	"fmt"
	"regexp"

	"github.com/samankwah/agromet-sub000/internal/model"
)

const (
	activityHeaderScanRows = 10
	activityHeaderScanCols = 5
	activityScanRows       = 20

	defaultActivityHeaderRow = 0
	defaultActivityColumn    = 1
)

// ActivityExtractor locates the activity-label column and builds the
// ordered activity list, filtering row serials while preserving
// legitimately-numbered activity names.
type ActivityExtractor struct {
	vocab Vocabulary

	pureNumberRe   *regexp.Regexp
	pureOrdinalRe  *regexp.Regexp
	romanRe        *regexp.Regexp
	numberedAgriRe *regexp.Regexp
}

// NewActivityExtractor creates an extractor over the given vocabulary.
func NewActivityExtractor(vocab Vocabulary) *ActivityExtractor {
	return &ActivityExtractor{
		vocab:          vocab,
		pureNumberRe:   regexp.MustCompile(`^\d+\.?\)?$`),
		pureOrdinalRe:  regexp.MustCompile(`(?i)^\d+(st|nd|rd|th)\.?$`),
		romanRe:        regexp.MustCompile(`(?i)^[ivxlc]+\.?$`),
		numberedAgriRe: regexp.MustCompile(`(?i)^\d+(st|nd|rd|th)\s+\S+`),
	}
}

// Extract scans up to activityScanRows rows below the activity header and
// returns the surviving labels as activities in row order, each retaining
// its source row for later schedule lookups.
func (e *ActivityExtractor) Extract(rows [][]string, trace *model.Trace) []model.Activity {
	headerRow, labelCol := e.findLabelColumn(rows)
	if trace != nil {
		trace.ActivityHeaderRow = headerRow
		trace.ActivityColumn = labelCol
	}

	activities := make([]model.Activity, 0, activityScanRows)
	seen := make(map[string]struct{}, activityScanRows)

	end := headerRow + 1 + activityScanRows
	if end > len(rows) {
		end = len(rows)
	}
	for r := headerRow + 1; r < end; r++ {
		label := NormalizeLabel(cellAt(rows, r, labelCol))
		if !e.isActivityName(label) {
			continue
		}

		id := Slugify(label)
		if id == "" {
			id = fmt.Sprintf("activity-%d", r)
		}
		if _, dup := seen[id]; dup {
			id = fmt.Sprintf("%s-%d", id, r)
		}
		seen[id] = struct{}{}

		activities = append(activities, model.Activity{
			ID:        id,
			Name:      label,
			SourceRow: r,
		})
	}

	return activities
}

// findLabelColumn scans the sheet's top-left region for an
// "activity"/"stage of activity" header cell. Falls back to the
// conventional position when none is found.
func (e *ActivityExtractor) findLabelColumn(rows [][]string) (headerRow, labelCol int) {
	maxRows := len(rows)
	if maxRows > activityHeaderScanRows {
		maxRows = activityHeaderScanRows
	}
	for r := 0; r < maxRows; r++ {
		maxCols := len(rows[r])
		if maxCols > activityHeaderScanCols {
			maxCols = activityHeaderScanCols
		}
		for c := 0; c < maxCols; c++ {
			if ContainsAnyFold(rows[r][c], []string{"activity"}) {
				return r, c
			}
		}
	}
	return defaultActivityHeaderRow, defaultActivityColumn
}

// isActivityName applies the two-stage filter: first reject blanks and
// known non-activity header text, then reject bare row serials ("1", "2.",
// "III") unless the label is rescued by a numbered-ordinal-plus-keyword
// pattern, an agricultural keyword, or a multi-word phrase. Row serials and
// numbered activity names are visually identical without this semantic
// check.
func (e *ActivityExtractor) isActivityName(label string) bool {
	if label == "" {
		return false
	}
	if e.vocab.IsPureMonth(label) {
		return false
	}
	if ContainsAnyFold(label, e.vocab.NonActivityKeywords) {
		return false
	}

	serial := e.pureNumberRe.MatchString(label) ||
		e.pureOrdinalRe.MatchString(label) ||
		e.romanRe.MatchString(label)
	if !serial {
		return true
	}

	if e.numberedAgriRe.MatchString(label) {
		return true
	}
	if ContainsAnyFold(label, e.vocab.AgriculturalKeywords) {
		return true
	}
	return containsSpace(label)
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}
