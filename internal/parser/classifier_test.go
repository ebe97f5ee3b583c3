package parser_test

import (
	"testing"

	"github.com/samankwah/agromet-sub000/internal/model"
	"github.com/samankwah/agromet-sub000/internal/parser"
)

func newClassifier() *parser.Classifier {
	return parser.NewClassifier(parser.DefaultVocabulary())
}

func TestClassifyCropSeasonal(t *testing.T) {
	rows := [][]string{
		{"Maize Production Calendar"},
		{"Activity", "JAN", "FEB", "MAR", "APR"},
	}

	trace := model.NewTrace()
	cls := newClassifier().Classify(rows, "maize.xlsx", trace)

	if got, want := cls.Type, model.CalendarSeasonal; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
	if got, want := cls.Commodity, "maize"; got != want {
		t.Fatalf("Commodity=%q, want %q", got, want)
	}
	if cls.Title == "" {
		t.Fatal("Title empty, want calendar title")
	}
	if trace.CommodityDefaulted {
		t.Fatal("CommodityDefaulted=true, want false")
	}
}

func TestClassifyPoultryCycle(t *testing.T) {
	rows := [][]string{
		{"Broiler Production Cycle"},
		{"Stage of Activity", "WK1", "WK2", "WK3", "WK4"},
		{"", "Brooding"},
	}

	cls := newClassifier().Classify(rows, "broiler.xlsx", model.NewTrace())

	if got, want := cls.Type, model.CalendarCycle; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
	if got, want := cls.Commodity, "broiler"; got != want {
		t.Fatalf("Commodity=%q, want %q", got, want)
	}
}

func TestClassifyGenericPoultryDefaultsToLayer(t *testing.T) {
	rows := [][]string{
		{"Village Chicken Production Calendar"},
		{"", "Week 1", "Week 2", "Week 3"},
	}

	cls := newClassifier().Classify(rows, "birds.xlsx", model.NewTrace())

	if got, want := cls.Type, model.CalendarCycle; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
	if got, want := cls.Commodity, parser.DefaultGenericPoultry; got != want {
		t.Fatalf("Commodity=%q, want %q", got, want)
	}
}

func TestClassifyWeeksOnlyDefaultsToBroiler(t *testing.T) {
	rows := [][]string{
		{"", "WK1", "WK2", "WK3", "WK4"},
	}

	trace := model.NewTrace()
	cls := newClassifier().Classify(rows, "upload.xlsx", trace)

	if got, want := cls.Type, model.CalendarCycle; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
	if got, want := cls.Commodity, parser.DefaultPoultryCommodity; got != want {
		t.Fatalf("Commodity=%q, want %q", got, want)
	}
	if !trace.CommodityDefaulted {
		t.Fatal("CommodityDefaulted=false, want true")
	}
}

func TestClassifyAbsoluteTimeOnlyDefaultsToMaize(t *testing.T) {
	rows := [][]string{
		{"", "JAN", "JAN", "FEB", "FEB"},
		{"", "WK1", "WK2", "WK3", "WK4"},
	}

	trace := model.NewTrace()
	cls := newClassifier().Classify(rows, "upload.xlsx", trace)

	if got, want := cls.Type, model.CalendarSeasonal; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
	if got, want := cls.Commodity, parser.DefaultCropCommodity; got != want {
		t.Fatalf("Commodity=%q, want %q", got, want)
	}
	if !trace.CommodityDefaulted {
		t.Fatal("CommodityDefaulted=false, want true")
	}
}

func TestClassifyDateRangesOnly(t *testing.T) {
	rows := [][]string{
		{"", "1-7", "8-14", "15-21", "22-28"},
	}

	cls := newClassifier().Classify(rows, "upload.xlsx", model.NewTrace())

	if got, want := cls.Type, model.CalendarSeasonal; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
}

func TestClassifyUnknown(t *testing.T) {
	rows := [][]string{
		{"hello", "world"},
		{"foo", "bar"},
	}

	trace := model.NewTrace()
	cls := newClassifier().Classify(rows, "random.xlsx", trace)

	if got, want := cls.Type, model.CalendarUnknown; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
	if got, want := trace.ClassifierBranch, "unknown"; got != want {
		t.Fatalf("ClassifierBranch=%q, want %q", got, want)
	}
}

func TestClassifyCommodityFromFilename(t *testing.T) {
	rows := [][]string{
		{"", "JAN", "FEB", "MAR"},
	}

	cls := newClassifier().Classify(rows, "cassava production 2025.xlsx", model.NewTrace())

	if got, want := cls.Commodity, "cassava"; got != want {
		t.Fatalf("Commodity=%q, want %q", got, want)
	}
	if got, want := cls.Type, model.CalendarSeasonal; got != want {
		t.Fatalf("Type=%s, want %s", got, want)
	}
}
