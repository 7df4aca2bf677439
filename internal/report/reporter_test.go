package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"StockStory/internal/model"
)

func sampleTable() *model.Table {
	tbl := &model.Table{
		Dates: []time.Time{
			time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		},
		Open:        []float64{100, 105, 102},
		Close:       []float64{105, 102, 108},
		DailyChange: []float64{5, -3, 6},
		MA5:         []float64{105, 103.5, 105},
	}
	return tbl
}

func TestSummarize(t *testing.T) {
	r := New(&strings.Builder{}, 5)
	sum := r.Summarize(sampleTable())

	if math.Abs(sum.AvgChange-8.0/3.0) > 1e-9 {
		t.Errorf("AvgChange = %v, want %v", sum.AvgChange, 8.0/3.0)
	}
	if sum.MaxClose != 108 || sum.MinClose != 102 {
		t.Errorf("close extremes = %v/%v, want 108/102", sum.MaxClose, sum.MinClose)
	}
	if sum.Rows != 3 {
		t.Errorf("Rows = %d, want 3", sum.Rows)
	}
}

func TestSummarize_Empty(t *testing.T) {
	r := New(&strings.Builder{}, 5)
	sum := r.Summarize(&model.Table{})

	if !math.IsNaN(sum.AvgChange) || !math.IsNaN(sum.MaxClose) || !math.IsNaN(sum.MinClose) {
		t.Errorf("empty table should summarize to NaN, got %+v", sum)
	}
}

func TestPrintStory_Formatting(t *testing.T) {
	var b strings.Builder
	r := New(&b, 5)
	r.PrintStory(r.Summarize(sampleTable()))

	out := b.String()
	// 8/3 rounds to 2.67 at two decimals.
	for _, want := range []string{
		"Average daily price change: $2.67",
		"Maximum closing price: $108.00",
		"Minimum closing price: $102.00",
		"Insight: The 5-day moving average",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("story output missing %q\n%s", want, out)
		}
	}
}

func TestPrint_IncludesSections(t *testing.T) {
	var b strings.Builder
	r := New(&b, 2)
	r.Print(sampleTable())

	out := b.String()
	for _, want := range []string{
		"First 2 rows:",
		"Column info & data types:",
		"Basic stats for numeric columns:",
		model.ColDailyChange,
		model.ColMA5,
		"count",
		"mean",
		"75%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestPrint_EmptyTable(t *testing.T) {
	var b strings.Builder
	r := New(&b, 5)
	r.Print(&model.Table{})

	if !strings.Contains(b.String(), "(empty table)") {
		t.Error("empty table should be reported as such")
	}
}

func TestDescribe_SkipsMissingValues(t *testing.T) {
	s := describe("col", []float64{1, math.NaN(), 3})
	if s.count != 2 {
		t.Errorf("count = %d, want 2", s.count)
	}
	if math.Abs(s.mean-2) > 1e-9 {
		t.Errorf("mean = %v, want 2", s.mean)
	}
	if s.min != 1 || s.max != 3 {
		t.Errorf("min/max = %v/%v, want 1/3", s.min, s.max)
	}
}

func TestDescribe_AllMissing(t *testing.T) {
	s := describe("col", []float64{math.NaN()})
	if s.count != 0 {
		t.Errorf("count = %d, want 0", s.count)
	}
	if !math.IsNaN(s.mean) || !math.IsNaN(s.q50) {
		t.Error("statistics of an all-missing column should be NaN")
	}
}
