package parser

import "strings"

// Business-policy defaults applied when classification cannot decide a
// commodity from the sheet text. Named here so the policy can be revisited
// without touching control flow.
const (
	DefaultCropCommodity    = "maize"
	DefaultPoultryCommodity = "broiler"
	DefaultGenericPoultry   = "layer"
)

// Vocabulary holds the read-only keyword tables driving classification and
// extraction. Tables are injectable so alternate vocabularies can be
// swapped in tests and configuration; a Vocabulary is safe to share across
// concurrent parses.
type Vocabulary struct {
	Months             []string // abbreviated month tokens, lowercase
	MonthNames         []string // full month names, lowercase
	WeekTokens         []string
	CalendarKeywords   []string
	CycleKeywords      []string
	CropCommodities    []string
	PoultryCommodities []string
	PoultryIndicators  []string
	// AgriculturalKeywords rescue legitimately-numbered activity names
	// ("1st Weeding") from the row-serial filter.
	AgriculturalKeywords []string
	// NonActivityKeywords mark header/summary rows that are never
	// activities.
	NonActivityKeywords []string

	DefaultCrop    string
	DefaultPoultry string
	GenericPoultry string
}

// DefaultVocabulary returns the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Months: []string{
			"jan", "feb", "mar", "apr", "may", "jun",
			"jul", "aug", "sep", "oct", "nov", "dec",
		},
		MonthNames: []string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		WeekTokens:       []string{"week", "wk"},
		CalendarKeywords: []string{"calendar", "production", "season", "cropping"},
		CycleKeywords: []string{
			"brooding", "starter phase", "starter", "grower", "finisher",
			"laying", "point of lay", "vaccination", "chick", "batch",
		},
		CropCommodities: []string{
			"maize", "rice", "cassava", "yam", "sorghum", "millet",
			"groundnut", "soybean", "soya", "cowpea", "tomato", "pepper",
			"onion", "okra", "cabbage", "plantain", "cocoa", "cotton",
			"sweet potato", "watermelon", "garden egg",
		},
		PoultryCommodities: []string{
			"broiler", "layer", "cockerel", "duck", "turkey",
			"guinea fowl", "quail", "ostrich",
		},
		PoultryIndicators: []string{"poultry", "chicken", "bird"},
		AgriculturalKeywords: []string{
			"weeding", "weed", "fertilizer", "fertiliser", "manure",
			"planting", "sowing", "transplanting", "nursery", "harvest",
			"land", "ploughing", "harrowing", "spraying", "pest", "disease",
			"irrigation", "thinning", "staking", "pruning", "storage",
			"drying", "shelling", "threshing", "brooding", "vaccination",
			"feeding", "debeaking", "culling", "site",
		},
		NonActivityKeywords: []string{
			"activity", "stage", "s/n", "no.", "date", "month", "week",
			"wk", "total", "summary", "remark", "legend", "source",
		},

		DefaultCrop:    DefaultCropCommodity,
		DefaultPoultry: DefaultPoultryCommodity,
		GenericPoultry: DefaultGenericPoultry,
	}
}

// IsMonthToken reports whether the cell text contains a month token.
func (v *Vocabulary) IsMonthToken(cell string) bool {
	c := strings.ToLower(strings.TrimSpace(cell))
	if c == "" {
		return false
	}
	return containsAny(c, v.Months)
}

// IsPureMonth reports whether the cell is nothing but a month name.
func (v *Vocabulary) IsPureMonth(cell string) bool {
	c := strings.ToLower(strings.TrimSpace(cell))
	for _, m := range v.Months {
		if c == m {
			return true
		}
	}
	for _, m := range v.MonthNames {
		if c == m {
			return true
		}
	}
	return false
}

// IsWeekToken reports whether the cell text contains a week token.
func (v *Vocabulary) IsWeekToken(cell string) bool {
	c := strings.ToLower(strings.TrimSpace(cell))
	if c == "" {
		return false
	}
	return containsAny(c, v.WeekTokens)
}

// MonthAbbrev returns the normalized upper-case 3-letter month for a cell,
// or "" when the cell holds no month token.
func (v *Vocabulary) MonthAbbrev(cell string) string {
	c := strings.ToLower(strings.TrimSpace(cell))
	if c == "" {
		return ""
	}
	for _, m := range v.Months {
		if strings.Contains(c, m) {
			return strings.ToUpper(m)
		}
	}
	return ""
}
