package parser

import (
	"fmt"
	"regexp"

	"github.com/samankwah/agromet-sub000/internal/model"
)

const (
	headerScanRows = 10
	headerMinHits  = 3
	daysPerSlot    = 7
)

// TimelineExtractor locates the time-axis header rows and builds the
// ordered list of timeline columns mapped to source column indices.
type TimelineExtractor struct {
	vocab       Vocabulary
	dateRangeRe *regexp.Regexp
}

// NewTimelineExtractor creates an extractor over the given vocabulary.
func NewTimelineExtractor(vocab Vocabulary) *TimelineExtractor {
	return &TimelineExtractor{
		vocab:       vocab,
		dateRangeRe: regexp.MustCompile(`\d{1,2}[-/]\d{1,2}`),
	}
}

// Extract walks the month-header row from the first timeline column to its
// end, carrying the current month across unlabeled columns. Week labels and
// date ranges come from their own header rows when present, otherwise they
// are synthesized ("WK{n}", 7-day windows). An empty result means no month
// header was found and the caller should fall back.
func (e *TimelineExtractor) Extract(rows [][]string, trace *model.Trace) []model.TimelineColumn {
	monthRow := findHeaderRow(rows, headerScanRows, headerMinHits, e.vocab.IsMonthToken)
	weekRow := findHeaderRow(rows, headerScanRows, headerMinHits, e.vocab.IsWeekToken)
	dateRow := findHeaderRow(rows, headerScanRows, headerMinHits, e.dateRangeRe.MatchString)

	if trace != nil {
		trace.MonthHeaderRow = monthRow
		trace.WeekHeaderRow = weekRow
		trace.DateRangeRow = dateRow
	}

	if monthRow < 0 {
		return nil
	}

	firstCol := e.firstTimelineColumn(rows, monthRow, weekRow)
	if trace != nil {
		trace.FirstTimelineColumn = firstCol
	}

	months := rows[monthRow]
	timeline := make([]model.TimelineColumn, 0, len(months)-firstCol)

	currentMonth := ""
	for col := firstCol; col < len(months); col++ {
		if m := e.vocab.MonthAbbrev(months[col]); m != "" {
			currentMonth = m
		}

		idx := len(timeline)
		tc := model.TimelineColumn{
			Index:        idx,
			Month:        currentMonth,
			SourceColumn: col,
		}

		if weekRow >= 0 {
			tc.WeekLabel = NormalizeLabel(cellAt(rows, weekRow, col))
		}
		if tc.WeekLabel == "" {
			tc.WeekLabel = fmt.Sprintf("WK%d", idx+1)
		}
		tc.Label = tc.WeekLabel

		if dateRow >= 0 {
			tc.DateRange = NormalizeLabel(cellAt(rows, dateRow, col))
		}
		if tc.DateRange == "" {
			tc.DateRange = fmt.Sprintf("%d-%d", idx*daysPerSlot+1, (idx+1)*daysPerSlot)
		}

		timeline = append(timeline, tc)
	}

	return timeline
}

// firstTimelineColumn finds the leftmost column carrying month or week
// vocabulary; columns left of it are label columns, not timeline.
func (e *TimelineExtractor) firstTimelineColumn(rows [][]string, monthRow, weekRow int) int {
	first := len(rows[monthRow])
	for col, cell := range rows[monthRow] {
		if e.vocab.IsMonthToken(cell) {
			first = col
			break
		}
	}
	if weekRow >= 0 {
		for col, cell := range rows[weekRow] {
			if col >= first {
				break
			}
			if e.vocab.IsWeekToken(cell) {
				first = col
				break
			}
		}
	}
	if first >= len(rows[monthRow]) {
		return 0
	}
	return first
}

func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
