package colors

import (
	"strings"

	"github.com/samankwah/agromet-sub000/internal/model"
)

// White is the spreadsheet convention for "no fill"; it never counts as a
// resolved color on any encoding path.
const White = "#FFFFFF"

// Placeholder marks a cell that is visibly styled but whose color could
// not be resolved through any encoding. Biasing toward false positives is
// deliberate: many source sheets signal activity purely through fill with
// no reliable encoding path.
const Placeholder = "#CCCCCC"

// Resolver resolves a cell's effective fill color across the three
// spreadsheet color encodings.
type Resolver struct {
	palette *Palette
}

// NewResolver creates a resolver over the given palette.
func NewResolver(p *Palette) *Resolver {
	if p == nil {
		p = DefaultPalette()
	}
	return &Resolver{palette: p}
}

// Resolve returns the normalized "#RRGGBB" fill color for a style
// descriptor, or "" when the cell carries no color signal. Precedence:
// direct RGB, indexed palette, theme palette, then the Placeholder when a
// fill is present but unresolvable. White resolves to "" on every path.
func (r *Resolver) Resolve(style *model.CellStyle) string {
	if style == nil {
		return ""
	}

	if style.RGB != "" {
		if hex, ok := NormalizeHex(style.RGB); ok {
			if hex == White {
				return ""
			}
			return hex
		}
	}

	if style.Indexed != nil {
		if hex, ok := r.palette.Indexed(*style.Indexed); ok {
			if hex == White {
				return ""
			}
			return hex
		}
	}

	if style.Theme != nil {
		if hex, ok := r.palette.Theme(*style.Theme); ok {
			if hex == White {
				return ""
			}
			return hex
		}
	}

	// Styled but unresolved: some fill exists (a pattern flag, or an
	// encoding that missed its table).
	if style.HasFill() {
		return Placeholder
	}
	return ""
}

// NormalizeHex normalizes a hex color to upper-case "#RRGGBB". It accepts
// an optional leading '#' and an "AARRGGBB" form whose alpha byte is
// dropped.
func NormalizeHex(s string) (string, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) == 8 {
		s = s[2:]
	}
	if len(s) != 6 {
		return "", false
	}
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return "", false
		}
	}
	return "#" + strings.ToUpper(s), true
}
