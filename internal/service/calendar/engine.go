package calendar

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/samankwah/agromet-sub000/internal/colors"
	"github.com/samankwah/agromet-sub000/internal/config"
	"github.com/samankwah/agromet-sub000/internal/model"
	"github.com/samankwah/agromet-sub000/internal/parser"
	"github.com/samankwah/agromet-sub000/internal/workbook"
)

// Options carries per-parse input metadata. Region, District, Commodity
// and PoultryType pass through unmodified into the result metadata.
type Options struct {
	Filename    string
	Kind        workbook.Kind
	Region      string
	District    string
	Commodity   string
	PoultryType string
}

// Engine is the top-level extraction pipeline: read, classify, extract
// timeline and activities, map the schedule, or synthesize the fallback.
// An Engine holds only read-only tables and is safe for concurrent use.
type Engine struct {
	classifier *parser.Classifier
	timeline   *parser.TimelineExtractor
	activities *parser.ActivityExtractor
	mapper     *Mapper
}

// NewEngine builds an engine from the optional configuration overrides.
// A nil config keeps every built-in table.
func NewEngine(cfg *config.AppConfig) *Engine {
	vocab := parser.DefaultVocabulary()
	palette := colors.DefaultPalette()

	if cfg != nil {
		applyVocabulary(&vocab, cfg)
		palette.ApplyOverrides(cfg.Palette)
	}

	return &Engine{
		classifier: parser.NewClassifier(vocab),
		timeline:   parser.NewTimelineExtractor(vocab),
		activities: parser.NewActivityExtractor(vocab),
		mapper:     NewMapper(colors.NewResolver(palette)),
	}
}

// Parse runs the whole pipeline over a file buffer. It never panics and
// never returns a Go error: a failed parse is a {success:false} envelope,
// and a structurally undetectable sheet yields the synthesized fallback
// with success:true.
func (e *Engine) Parse(data []byte, opts Options) (result *model.ParseResult) {
	trace := model.NewTrace()
	meta := model.Metadata{
		Filename:       opts.Filename,
		ParseID:        uuid.New().String(),
		ProcessingDate: time.Now().UTC().Format(time.RFC3339),
		Region:         opts.Region,
		District:       opts.District,
		Commodity:      opts.Commodity,
		PoultryType:    opts.PoultryType,
	}

	// Nothing may propagate past the parse entry point.
	defer func() {
		if r := recover(); r != nil {
			result = &model.ParseResult{
				Success:  false,
				Error:    fmt.Sprintf("internal parse failure: %v", r),
				Metadata: meta,
				Trace:    trace,
			}
		}
	}()

	sheet, err := workbook.Read(data, opts.Kind)
	if err != nil {
		return &model.ParseResult{
			Success:  false,
			Error:    err.Error(),
			Metadata: meta,
			Trace:    trace,
		}
	}

	return e.ParseSheet(sheet, meta, trace)
}

// ParseSheet runs classification and extraction over an already-decoded
// sheet. Exposed so callers holding pre-extracted matrices can invoke the
// engine without re-encoding bytes.
func (e *Engine) ParseSheet(sheet *workbook.Sheet, meta model.Metadata, trace *model.Trace) *model.ParseResult {
	if trace == nil {
		trace = model.NewTrace()
	}
	rows := sheet.Rows()

	cls := e.classifier.Classify(rows, meta.Filename, trace)
	if cls.Type == model.CalendarUnknown {
		return e.fallbackResult(cls, "classification unknown", meta, trace)
	}

	timeline := e.timeline.Extract(rows, trace)
	if len(timeline) == 0 {
		return e.fallbackResult(cls, "no timeline detected", meta, trace)
	}

	activities := e.activities.Extract(rows, trace)
	if len(activities) == 0 {
		return e.fallbackResult(cls, "no activities detected", meta, trace)
	}

	schedule, activeCount := e.mapper.Map(sheet, activities, timeline, trace.ActivityColumn)

	cal := &model.CalendarModel{
		Classification: cls,
		Timeline:       timeline,
		Activities:     activities,
		Schedule:       schedule,
		Summary: model.Summary{
			TotalActivities:    len(activities),
			TimeSpan:           timeSpan(timeline),
			ActivePeriodsCount: activeCount,
		},
	}

	meta.TotalActivities = len(activities)
	return &model.ParseResult{
		Success:  true,
		Data:     cal,
		Metadata: meta,
		Trace:    trace,
	}
}

func (e *Engine) fallbackResult(cls model.Classification, reason string, meta model.Metadata, trace *model.Trace) *model.ParseResult {
	cal := Synthesize(cls, reason, trace)
	meta.FallbackUsed = true
	meta.TotalActivities = cal.Summary.TotalActivities
	return &model.ParseResult{
		Success:  true,
		Data:     cal,
		Metadata: meta,
		Trace:    trace,
	}
}

func timeSpan(timeline []model.TimelineColumn) string {
	if len(timeline) == 0 {
		return ""
	}
	first := timeline[0].Month
	last := timeline[len(timeline)-1].Month
	if first != "" && last != "" {
		if first == last {
			return first
		}
		return fmt.Sprintf("%s-%s", first, last)
	}
	return fmt.Sprintf("%d weeks", len(timeline))
}

func applyVocabulary(vocab *parser.Vocabulary, cfg *config.AppConfig) {
	v := cfg.Vocabulary
	if len(v.CropCommodities) > 0 {
		vocab.CropCommodities = v.CropCommodities
	}
	if len(v.PoultryCommodities) > 0 {
		vocab.PoultryCommodities = v.PoultryCommodities
	}
	if len(v.PoultryIndicators) > 0 {
		vocab.PoultryIndicators = v.PoultryIndicators
	}
	if len(v.CycleKeywords) > 0 {
		vocab.CycleKeywords = v.CycleKeywords
	}
	if len(v.AgriculturalKeywords) > 0 {
		vocab.AgriculturalKeywords = v.AgriculturalKeywords
	}
	if len(v.NonActivityKeywords) > 0 {
		vocab.NonActivityKeywords = v.NonActivityKeywords
	}

	d := cfg.Defaults
	if d.CropCommodity != "" {
		vocab.DefaultCrop = d.CropCommodity
	}
	if d.PoultryCommodity != "" {
		vocab.DefaultPoultry = d.PoultryCommodity
	}
	if d.GenericPoultry != "" {
		vocab.GenericPoultry = d.GenericPoultry
	}
}
