package model

// Trace records which detection branches fired during a parse. It replaces
// ad hoc console tracing so heuristic decisions stay auditable and testable.
// Row/column fields are -1 when the corresponding structure was not found.
type Trace struct {
	ClassifierBranch    string `json:"classifierBranch,omitempty"`
	TitleRow            int    `json:"titleRow"`
	MonthHeaderRow      int    `json:"monthHeaderRow"`
	WeekHeaderRow       int    `json:"weekHeaderRow"`
	DateRangeRow        int    `json:"dateRangeRow"`
	FirstTimelineColumn int    `json:"firstTimelineColumn"`
	ActivityHeaderRow   int    `json:"activityHeaderRow"`
	ActivityColumn      int    `json:"activityColumn"`
	CommodityDefaulted  bool   `json:"commodityDefaulted"`
	FallbackReason      string `json:"fallbackReason,omitempty"`
}

// NewTrace returns a trace with all positions marked as not-found.
func NewTrace() *Trace {
	return &Trace{
		TitleRow:            -1,
		MonthHeaderRow:      -1,
		WeekHeaderRow:       -1,
		DateRangeRow:        -1,
		FirstTimelineColumn: -1,
		ActivityHeaderRow:   -1,
		ActivityColumn:      -1,
	}
}
