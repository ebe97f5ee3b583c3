package calendar

import (
	"fmt"

	"github.com/samankwah/agromet-sub000/internal/colors"
	"github.com/samankwah/agromet-sub000/internal/model"
	"github.com/samankwah/agromet-sub000/internal/parser"
)

// Canonical fallback calendar dimensions: 7 months of 4 weeks each.
const (
	fallbackMonths      = 7
	fallbackWeeksPerMon = 4
	fallbackColumns     = fallbackMonths * fallbackWeeksPerMon
)

var fallbackMonthLabels = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL"}

type fallbackActivity struct {
	name      string
	color     string
	startWeek int // 1-based, inclusive
	endWeek   int
}

// The canonical maize production sequence. Week ranges and colors are the
// fixed convention, not derived from any input.
var fallbackActivities = []fallbackActivity{
	{"Site Selection", colors.ColorSiteSelection, 1, 2},
	{"Land Preparation", colors.ColorLandPreparation, 3, 5},
	{"Planting/Sowing", colors.ColorPlanting, 6, 8},
	{"1st Fertilizer Application", colors.ColorFertilizer, 9, 10},
	{"First Weed Management", colors.ColorWeedPestControl, 11, 13},
	{"2nd Fertilizer Application", colors.ColorFertilizer, 14, 15},
	{"Second Weed Management", colors.ColorWeedPestControl, 16, 18},
	{"Harvesting", colors.ColorHarvesting, 24, 26},
	{"Post-Harvest Handling", colors.ColorPostHarvest, 27, 28},
}

// Synthesize produces the canonical default calendar used whenever
// classification or structural detection yields nothing usable. The
// classification carries through (an unknown sheet stays unknown); only
// missing commodity/title are filled with the maize defaults. The result
// trades correctness for availability: callers always receive a
// structurally valid, renderable model.
func Synthesize(cls model.Classification, reason string, trace *model.Trace) *model.CalendarModel {
	if trace != nil {
		trace.FallbackReason = reason
	}
	if cls.Commodity == "" {
		cls.Commodity = parser.DefaultCropCommodity
	}
	if cls.Title == "" {
		cls.Title = "Maize Production Calendar"
	}

	timeline := make([]model.TimelineColumn, 0, fallbackColumns)
	for i := 0; i < fallbackColumns; i++ {
		timeline = append(timeline, model.TimelineColumn{
			Index:        i,
			Label:        fmt.Sprintf("WK%d", i+1),
			Month:        fallbackMonthLabels[i/fallbackWeeksPerMon],
			WeekLabel:    fmt.Sprintf("WK%d", i+1),
			DateRange:    fmt.Sprintf("%d-%d", i*7+1, (i+1)*7),
			SourceColumn: i,
		})
	}

	activities := make([]model.Activity, 0, len(fallbackActivities))
	schedule := make(map[string][]model.Period, len(fallbackActivities))
	activeCount := 0

	for _, fa := range fallbackActivities {
		id := parser.Slugify(fa.name)
		activities = append(activities, model.Activity{
			ID:        id,
			Name:      fa.name,
			Color:     fa.color,
			SourceRow: -1,
		})

		var periods []model.Period
		for wk := fa.startWeek; wk <= fa.endWeek; wk++ {
			periods = append(periods, model.Period{
				ActivityID:    id,
				TimelineIndex: wk - 1,
				Active:        true,
				Color:         fa.color,
			})
			activeCount++
		}
		schedule[id] = periods
	}

	return &model.CalendarModel{
		Classification: cls,
		Timeline:       timeline,
		Activities:     activities,
		Schedule:       schedule,
		Summary: model.Summary{
			TotalActivities:    len(activities),
			TimeSpan:           fmt.Sprintf("%s-%s", fallbackMonthLabels[0], fallbackMonthLabels[fallbackMonths-1]),
			ActivePeriodsCount: activeCount,
		},
	}
}
