package model

// CellStyle describes the fill styling of a single cell as found in the
// source file. A cell's fill color can be encoded three mutually exclusive
// ways (direct RGB, indexed palette, theme palette); at most one of the
// encodings carries the resolved color, the rest stay unset.
type CellStyle struct {
	// RGB is the direct color encoding, "RRGGBB" or "AARRGGBB" hex,
	// with or without a leading '#'.
	RGB string `json:"rgb,omitempty"`
	// Indexed is the legacy palette index (0-127).
	Indexed *int `json:"indexed,omitempty"`
	// Theme is the theme palette slot.
	Theme *int `json:"theme,omitempty"`
	// HasPattern reports that some fill pattern is present even when no
	// color encoding could be read.
	HasPattern bool `json:"hasPattern,omitempty"`
	// HasFontColor reports that the cell carries an explicit font color.
	HasFontColor bool `json:"hasFontColor,omitempty"`
}

// Empty reports whether the style carries no color encoding at all.
func (s *CellStyle) Empty() bool {
	return s == nil || (s.RGB == "" && s.Indexed == nil && s.Theme == nil)
}

// HasFill reports whether the style hints at any fill, resolved or not.
func (s *CellStyle) HasFill() bool {
	return s != nil && (!s.Empty() || s.HasPattern)
}
