package model

// Metadata is the envelope metadata block. Caller-supplied fields
// (region/district/commodity/poultryType) pass through unmodified.
type Metadata struct {
	Filename        string `json:"filename"`
	ParseID         string `json:"parseId"`
	TotalActivities int    `json:"totalActivities"`
	ProcessingDate  string `json:"processingDate"`
	FallbackUsed    bool   `json:"fallbackUsed"`
	Region          string `json:"region,omitempty"`
	District        string `json:"district,omitempty"`
	Commodity       string `json:"commodity,omitempty"`
	PoultryType     string `json:"poultryType,omitempty"`
}

// ParseResult is the top-level result envelope. A failed parse is a
// displayable, recoverable state, never a panic or propagated error.
type ParseResult struct {
	Success  bool           `json:"success"`
	Data     *CalendarModel `json:"data,omitempty"`
	Error    string         `json:"error,omitempty"`
	Metadata Metadata       `json:"metadata"`
	Trace    *Trace         `json:"trace,omitempty"`
}
