package calendar

import (
	"strconv"
	"strings"

	"github.com/samankwah/agromet-sub000/internal/colors"
	"github.com/samankwah/agromet-sub000/internal/model"
	"github.com/samankwah/agromet-sub000/internal/workbook"
)

// Mapper determines the active periods for the activity×timeline cross
// product and assembles the normalized schedule.
type Mapper struct {
	resolver *colors.Resolver
}

// NewMapper creates a mapper over the given color resolver.
func NewMapper(r *colors.Resolver) *Mapper {
	if r == nil {
		r = colors.NewResolver(nil)
	}
	return &Mapper{resolver: r}
}

// Map builds the schedule. Only active periods are retained; any
// (activity, timeline index) pair absent from the schedule is inactive.
// labelCol is the activity-label column: its cells echo the activity name,
// so literal text there does not count as an activity signal (fill color
// still does). Each activity's display color becomes the color of its
// first active period with a resolved, non-placeholder color.
func (m *Mapper) Map(sheet *workbook.Sheet, activities []model.Activity, timeline []model.TimelineColumn, labelCol int) (map[string][]model.Period, int) {
	schedule := make(map[string][]model.Period, len(activities))
	activeCount := 0

	for i := range activities {
		act := &activities[i]
		var periods []model.Period

		for _, tc := range timeline {
			raw := sheet.Value(act.SourceRow, tc.SourceColumn)
			style := sheet.Style(act.SourceRow, tc.SourceColumn)
			color := m.resolver.Resolve(style)

			value := raw
			if tc.SourceColumn == labelCol {
				value = ""
			}
			if !IsCellActive(color, value, style) {
				continue
			}

			p := model.Period{
				ActivityID:    act.ID,
				TimelineIndex: tc.Index,
				Active:        true,
				Color:         color,
				RawValue:      raw,
			}
			periods = append(periods, p)
			activeCount++

			if act.Color == "" && color != "" && color != colors.Placeholder {
				act.Color = color
			}
		}

		if len(periods) > 0 {
			schedule[act.ID] = periods
		}
	}

	return schedule, activeCount
}

// IsCellActive judges whether a cell represents "this activity occurs in
// this time slot": a resolved fill color, a non-empty non-zero literal, or
// any fill/font styling even when the color stayed unresolved.
func IsCellActive(color, value string, style *model.CellStyle) bool {
	if color != "" {
		return true
	}

	v := strings.TrimSpace(value)
	if v != "" {
		if f, err := strconv.ParseFloat(v, 64); err != nil || f != 0 {
			return true
		}
	}

	return style != nil && (style.HasFill() || style.HasFontColor)
}
