package colors

import (
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/samankwah/agromet-sub000/internal/config"
)

// The 64-79 band of the indexed palette is reserved by the calendar
// convention for canonical activity colors.
const (
	IndexSiteSelection   = 64
	IndexLandPreparation = 65
	IndexPlanting        = 66
	IndexFertilizer      = 67
	IndexWeedPestControl = 68
	IndexHarvesting      = 69
	IndexPostHarvest     = 70
)

// Canonical activity colors, shared by the domain palette band and the
// fallback calendar.
const (
	ColorSiteSelection   = "#8B4513"
	ColorLandPreparation = "#A0522D"
	ColorPlanting        = "#228B22"
	ColorFertilizer      = "#4169E1"
	ColorWeedPestControl = "#FF8C00"
	ColorHarvesting      = "#FFD700"
	ColorPostHarvest     = "#9370DB"
)

// Palette is the read-only indexed (0-127) and theme color lookup. A
// Palette is safe to share across concurrent parses.
type Palette struct {
	indexed map[int]string
	theme   map[int]string
}

// DefaultPalette builds the built-in palette: the standard indexed mapping
// seeded from excelize, overlaid with the domain-reserved 64-79 band, plus
// the ten-entry Office theme table.
func DefaultPalette() *Palette {
	p := &Palette{
		indexed: make(map[int]string, 128),
		theme:   make(map[int]string, 10),
	}

	for i, c := range excelize.IndexedColorMapping {
		if hex, ok := NormalizeHex(c); ok {
			p.indexed[i] = hex
		}
	}

	domain := map[int]string{
		IndexSiteSelection:   ColorSiteSelection,
		IndexLandPreparation: ColorLandPreparation,
		IndexPlanting:        ColorPlanting,
		IndexFertilizer:      ColorFertilizer,
		IndexWeedPestControl: ColorWeedPestControl,
		IndexHarvesting:      ColorHarvesting,
		IndexPostHarvest:     ColorPostHarvest,
		71:                   "#32CD32", // growth monitoring
		72:                   "#1E90FF", // irrigation
		73:                   "#DC143C", // pest/disease treatment
		74:                   "#DAA520", // drying
		75:                   "#8FBC8F", // thinning
		76:                   "#BA55D3", // storage
		77:                   "#FF6347", // spraying
		78:                   "#4682B4", // feeding
		79:                   "#708090", // other/unspecified
	}
	for i, c := range domain {
		p.indexed[i] = c
	}

	theme := []string{
		"#FFFFFF", // lt1
		"#000000", // dk1
		"#E7E6E6", // lt2
		"#44546A", // dk2
		"#4472C4", // accent1
		"#ED7D31", // accent2
		"#A5A5A5", // accent3
		"#FFC000", // accent4
		"#5B9BD5", // accent5
		"#70AD47", // accent6
	}
	for i, c := range theme {
		p.theme[i] = c
	}

	return p
}

// Indexed resolves an indexed-palette entry.
func (p *Palette) Indexed(i int) (string, bool) {
	c, ok := p.indexed[i]
	return c, ok
}

// Theme resolves a theme-palette entry.
func (p *Palette) Theme(i int) (string, bool) {
	c, ok := p.theme[i]
	return c, ok
}

// ApplyOverrides overlays configuration entries onto the palette. Keys are
// decimal indices; unparseable keys or colors are skipped.
func (p *Palette) ApplyOverrides(cfg config.PaletteConfig) {
	for k, v := range cfg.Indexed {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i > 127 {
			continue
		}
		if hex, ok := NormalizeHex(v); ok {
			p.indexed[i] = hex
		}
	}
	for k, v := range cfg.Theme {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			continue
		}
		if hex, ok := NormalizeHex(v); ok {
			p.theme[i] = hex
		}
	}
}
