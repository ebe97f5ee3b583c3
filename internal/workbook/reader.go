package workbook

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/samankwah/agromet-sub000/internal/model"
)

// Kind is the declared input format.
type Kind string

const (
	KindSpreadsheet Kind = "spreadsheet"
	KindCSV         Kind = "csv"
)

// ErrMalformedWorkbook is returned when the buffer cannot be decoded as the
// declared format. It is the only error that aborts parsing outright.
var ErrMalformedWorkbook = errors.New("malformed workbook")

type cellRef struct {
	Row, Col int
}

// Sheet is an immutable in-memory cell matrix with a parallel per-cell
// style lookup. All downstream detection runs against a Sheet; the engine
// itself performs no I/O.
type Sheet struct {
	name   string
	rows   [][]string
	styles map[cellRef]*model.CellStyle
}

// NewSheet builds a Sheet from a pre-extracted matrix and style lookup.
// Rows are padded to a rectangle so positional access is always in range.
func NewSheet(name string, rows [][]string, styles map[[2]int]*model.CellStyle) *Sheet {
	s := &Sheet{
		name:   name,
		rows:   padRows(rows),
		styles: make(map[cellRef]*model.CellStyle, len(styles)),
	}
	for k, v := range styles {
		s.styles[cellRef{Row: k[0], Col: k[1]}] = v
	}
	return s
}

// Name returns the source sheet name ("csv" for CSV input).
func (s *Sheet) Name() string { return s.name }

// Rows returns the cell matrix. Callers must treat it as read-only.
func (s *Sheet) Rows() [][]string { return s.rows }

// Value returns the literal cell value, or "" when out of range.
func (s *Sheet) Value(row, col int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	if col < 0 || col >= len(s.rows[row]) {
		return ""
	}
	return s.rows[row][col]
}

// Style returns the cell's fill descriptor, or nil when the cell carries
// no distinct styling.
func (s *Sheet) Style(row, col int) *model.CellStyle {
	return s.styles[cellRef{Row: row, Col: col}]
}

// Read decodes a file buffer into a Sheet. Only the first worksheet of a
// spreadsheet is read; the calendar conventions are single-sheet layouts.
func Read(data []byte, kind Kind) (*Sheet, error) {
	switch kind {
	case KindCSV:
		return readCSV(data)
	default:
		return readSpreadsheet(data)
	}
}

func readSpreadsheet(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no worksheets", ErrMalformedWorkbook)
	}
	name := sheets[0]

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	rows = padRows(rows)

	s := &Sheet{
		name:   name,
		rows:   rows,
		styles: make(map[cellRef]*model.CellStyle),
	}

	// GetRows trims trailing blank cells per row, but a filled blank cell
	// under a wide header row still falls inside the padded rectangle, so
	// the style scan covers it.
	for r := range rows {
		for c := range rows[r] {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			styleID, err := f.GetCellStyle(name, cell)
			if err != nil || styleID <= 0 {
				continue
			}
			if st := extractCellStyle(f, styleID); st != nil {
				s.styles[cellRef{Row: r, Col: c}] = st
			}
		}
	}

	return s, nil
}

func readCSV(data []byte) (*Sheet, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}

	return &Sheet{
		name:   "csv",
		rows:   padRows(records),
		styles: make(map[cellRef]*model.CellStyle),
	}, nil
}

// extractCellStyle builds the three-encoding fill descriptor for a style ID.
// The public GetStyle API surfaces resolved RGB fills; the raw stylesheet
// walk recovers indexed/theme encodings that GetStyle does not expose.
func extractCellStyle(f *excelize.File, styleID int) *model.CellStyle {
	st := &model.CellStyle{}

	if style, err := f.GetStyle(styleID); err == nil && style != nil {
		if style.Fill.Pattern > 0 {
			st.HasPattern = true
		}
		if len(style.Fill.Color) > 0 && style.Fill.Color[0] != "" {
			st.RGB = style.Fill.Color[0]
		}
		if style.Font != nil && style.Font.Color != "" {
			st.HasFontColor = true
		}
	}

	if ss := f.Styles; ss != nil && ss.CellXfs != nil && styleID < len(ss.CellXfs.Xf) {
		xf := ss.CellXfs.Xf[styleID]
		if xf.FillID != nil && ss.Fills != nil {
			fillID := *xf.FillID
			if fillID >= 0 && fillID < len(ss.Fills.Fill) {
				if fill := ss.Fills.Fill[fillID]; fill != nil && fill.PatternFill != nil {
					pf := fill.PatternFill
					if pf.PatternType != "" && pf.PatternType != "none" {
						st.HasPattern = true
					}
					if fg := pf.FgColor; fg != nil {
						switch {
						case fg.RGB != "":
							st.RGB = fg.RGB
						case fg.Theme != nil:
							theme := *fg.Theme
							st.Theme = &theme
						case fg.Indexed > 0:
							indexed := fg.Indexed
							st.Indexed = &indexed
						}
					}
				}
			}
		}
	}

	if st.Empty() && !st.HasPattern && !st.HasFontColor {
		return nil
	}
	return st
}

func padRows(rows [][]string) [][]string {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, maxCols)
		copy(padded, row)
		out[i] = padded
	}
	return out
}
