package model

// CalendarType identifies which calendar convention a sheet follows.
type CalendarType string

const (
	// CalendarSeasonal is a crop calendar keyed to absolute months/dates.
	CalendarSeasonal CalendarType = "seasonal"
	// CalendarCycle is a poultry calendar keyed to relative production weeks.
	CalendarCycle CalendarType = "cycle"
	// CalendarUnknown means classification failed; callers fall back to the
	// canonical default calendar.
	CalendarUnknown CalendarType = "unknown"
)

// Classification is the calendar kind decision for one sheet.
type Classification struct {
	Type      CalendarType `json:"type"`
	Commodity string       `json:"commodity"`
	Title     string       `json:"title"`
}

// TimelineColumn is one discrete time slot in the calendar's time axis.
type TimelineColumn struct {
	Index        int    `json:"index"` // 0-based, contiguous
	Label        string `json:"label"`
	Month        string `json:"month,omitempty"`
	WeekLabel    string `json:"weekLabel,omitempty"`
	DateRange    string `json:"dateRange,omitempty"`
	SourceColumn int    `json:"sourceColumn"`
}

// Activity is one named production stage/task occupying one source row.
type Activity struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"` // display color, first resolved period color
	SourceRow int    `json:"sourceRow"`
}

// Period is the outcome for one activity in one timeline column. Only
// active periods are retained in the schedule; absence means inactive.
type Period struct {
	ActivityID    string `json:"activityId"`
	TimelineIndex int    `json:"timelineIndex"`
	Active        bool   `json:"active"`
	Color         string `json:"color,omitempty"`
	RawValue      string `json:"rawValue,omitempty"`
}

// Summary holds the aggregate counts of a parsed calendar.
type Summary struct {
	TotalActivities    int    `json:"totalActivities"`
	TimeSpan           string `json:"timeSpan"`
	ActivePeriodsCount int    `json:"activePeriodsCount"`
}

// CalendarModel is the full normalized parse result. It is constructed
// fresh per parse call and never mutated afterwards.
type CalendarModel struct {
	Classification Classification      `json:"classification"`
	Timeline       []TimelineColumn    `json:"timeline"`
	Activities     []Activity          `json:"activities"`
	Schedule       map[string][]Period `json:"schedule"`
	Summary        Summary             `json:"summary"`
}

// ActiveAt reports whether the given activity is active in the given
// timeline column according to the schedule.
func (m *CalendarModel) ActiveAt(activityID string, timelineIndex int) bool {
	for _, p := range m.Schedule[activityID] {
		if p.TimelineIndex == timelineIndex {
			return p.Active
		}
	}
	return false
}
