package parser

import (
	"regexp"
	"strings"

	"github.com/samankwah/agromet-sub000/internal/model"
)

// Header evidence thresholds and scan depths for classification.
const (
	titleScanRows    = 5
	evidenceScanRows = 10
	evidenceMinHits  = 3
)

// Classifier decides which calendar convention a sheet follows and which
// commodity it covers, from header text alone.
type Classifier struct {
	vocab       Vocabulary
	dateRangeRe *regexp.Regexp
}

// NewClassifier creates a classifier over the given vocabulary.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{
		vocab:       vocab,
		dateRangeRe: regexp.MustCompile(`\d{1,2}[-/]\d{1,2}`),
	}
}

type headerEvidence struct {
	months     int
	weeks      int
	dateRanges int
	cycleHits  int
}

// Classify runs the decision table over the sheet's leading rows plus the
// filename. The chosen branch and any applied default are recorded in the
// trace for auditability.
func (c *Classifier) Classify(rows [][]string, filename string, trace *model.Trace) model.Classification {
	title, titleRow := c.findTitle(rows)
	if trace != nil {
		trace.TitleRow = titleRow
	}

	commodity, isPoultry := c.findCommodity(title + " " + filename)
	ev := c.collectEvidence(rows)

	cls := model.Classification{Type: model.CalendarUnknown, Title: title}
	branch := "unknown"
	defaulted := false

	hasAbsolute := ev.dateRanges >= evidenceMinHits || ev.months >= evidenceMinHits
	hasRelative := ev.weeks >= evidenceMinHits

	switch {
	case commodity != "" && !isPoultry && hasAbsolute:
		cls.Type = model.CalendarSeasonal
		cls.Commodity = commodity
		branch = "crop-commodity+absolute-time"

	case commodity != "" && isPoultry && (hasRelative || ev.cycleHits > 0):
		cls.Type = model.CalendarCycle
		cls.Commodity = commodity
		branch = "poultry-commodity+cycle"

	case hasRelative && !hasAbsolute:
		// Relative-week evidence only.
		cls.Type = model.CalendarCycle
		cls.Commodity = commodity
		if cls.Commodity == "" {
			cls.Commodity = c.vocab.DefaultPoultry
			defaulted = true
		}
		branch = "relative-weeks-only"

	case hasAbsolute:
		cls.Type = model.CalendarSeasonal
		cls.Commodity = commodity
		if cls.Commodity == "" {
			cls.Commodity = c.vocab.DefaultCrop
			defaulted = true
		}
		branch = "absolute-time-only"
	}

	if trace != nil {
		trace.ClassifierBranch = branch
		trace.CommodityDefaulted = defaulted
	}
	return cls
}

// findTitle returns the first cell in the leading rows that mentions a
// calendar keyword, plus its row, or ("", -1).
func (c *Classifier) findTitle(rows [][]string) (string, int) {
	limit := len(rows)
	if limit > titleScanRows {
		limit = titleScanRows
	}
	for r := 0; r < limit; r++ {
		for _, cell := range rows[r] {
			if cell == "" {
				continue
			}
			if ContainsAnyFold(cell, c.vocab.CalendarKeywords) {
				return NormalizeLabel(cell), r
			}
		}
	}
	return "", -1
}

// findCommodity matches the text against the crop vocabulary first, then
// poultry, then the generic poultry indicators (lower priority, defaulting
// to the generic poultry commodity).
func (c *Classifier) findCommodity(text string) (commodity string, poultry bool) {
	t := strings.ToLower(text)

	for _, crop := range c.vocab.CropCommodities {
		if strings.Contains(t, crop) {
			return crop, false
		}
	}
	for _, p := range c.vocab.PoultryCommodities {
		if strings.Contains(t, p) {
			return p, true
		}
	}
	if containsAny(t, c.vocab.PoultryIndicators) {
		return c.vocab.GenericPoultry, true
	}
	return "", false
}

func (c *Classifier) collectEvidence(rows [][]string) headerEvidence {
	ev := headerEvidence{}

	limit := len(rows)
	if limit > evidenceScanRows {
		limit = evidenceScanRows
	}
	for r := 0; r < limit; r++ {
		rowMonths := 0
		rowWeeks := 0
		rowRanges := 0
		for _, cell := range rows[r] {
			if cell == "" {
				continue
			}
			if c.vocab.IsMonthToken(cell) {
				rowMonths++
			}
			if c.vocab.IsWeekToken(cell) {
				rowWeeks++
			}
			if c.dateRangeRe.MatchString(cell) {
				rowRanges++
			}
			if ContainsAnyFold(cell, c.vocab.CycleKeywords) {
				ev.cycleHits++
			}
		}
		// Evidence is per-row: a header row must carry the tokens itself.
		if rowMonths > ev.months {
			ev.months = rowMonths
		}
		if rowWeeks > ev.weeks {
			ev.weeks = rowWeeks
		}
		if rowRanges > ev.dateRanges {
			ev.dateRanges = rowRanges
		}
	}
	return ev
}
