package cleaner

import (
	"math"
	"testing"
	"time"

	"StockStory/internal/model"
)

func day(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

func TestClean_DropsMissingRequired(t *testing.T) {
	nan := math.NaN()
	tbl := &model.Table{
		Dates:  []time.Time{day(1), day(2), {}, day(4)},
		Open:   []float64{100, nan, 101, 102},
		Close:  []float64{105, 104, 103, 106},
		Volume: []float64{1000, 2000, 3000, nan},
	}

	got := Clean(tbl)

	// Rows 2 (missing open) and 3 (missing date) go; row 4 stays even
	// though Volume is missing.
	if got.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", got.Len())
	}
	if !got.Dates[0].Equal(day(1)) || !got.Dates[1].Equal(day(4)) {
		t.Errorf("unexpected dates: %v", got.Dates)
	}
	if !math.IsNaN(got.Volume[1]) {
		t.Errorf("optional missing value should be retained as NaN, got %v", got.Volume[1])
	}
}

func TestClean_SortsAscending(t *testing.T) {
	tbl := &model.Table{
		Dates: []time.Time{day(3), day(1), day(2)},
		Open:  []float64{102, 100, 105},
		Close: []float64{108, 105, 102},
	}

	got := Clean(tbl)

	for i := 1; i < got.Len(); i++ {
		if got.Dates[i].Before(got.Dates[i-1]) {
			t.Fatalf("dates not non-decreasing at %d: %v", i, got.Dates)
		}
	}
	if got.Open[0] != 100 || got.Open[1] != 105 || got.Open[2] != 102 {
		t.Errorf("columns not reordered with dates: %v", got.Open)
	}
}

func TestClean_StableOnTies(t *testing.T) {
	tbl := &model.Table{
		Dates: []time.Time{day(2), day(1), day(1)},
		Open:  []float64{3, 1, 2},
		Close: []float64{3, 1, 2},
	}

	got := Clean(tbl)

	// The two day-1 rows keep their input order.
	if got.Open[0] != 1 || got.Open[1] != 2 || got.Open[2] != 3 {
		t.Errorf("tie order not preserved: %v", got.Open)
	}
}

func TestClean_Idempotent(t *testing.T) {
	nan := math.NaN()
	tbl := &model.Table{
		Dates: []time.Time{day(2), day(1), day(3)},
		Open:  []float64{100, nan, 102},
		Close: []float64{105, 104, 108},
	}

	once := Clean(tbl)
	twice := Clean(once)

	if twice.Len() != once.Len() {
		t.Fatalf("second clean changed row count: %d vs %d", twice.Len(), once.Len())
	}
	for i := 0; i < once.Len(); i++ {
		if !once.Dates[i].Equal(twice.Dates[i]) || once.Open[i] != twice.Open[i] || once.Close[i] != twice.Close[i] {
			t.Fatalf("second clean changed row %d", i)
		}
	}
}

func TestClean_EmptyResultValid(t *testing.T) {
	tbl := &model.Table{
		Dates: []time.Time{{}},
		Open:  []float64{100},
		Close: []float64{105},
	}

	got := Clean(tbl)
	if got.Len() != 0 {
		t.Fatalf("expected empty table, got %d rows", got.Len())
	}
}

func TestClean_AbsentOptionalColumnsStayNil(t *testing.T) {
	tbl := &model.Table{
		Dates: []time.Time{day(1)},
		Open:  []float64{100},
		Close: []float64{105},
	}

	got := Clean(tbl)
	if got.High != nil || got.Low != nil || got.Volume != nil {
		t.Error("absent optional columns should remain nil after cleaning")
	}
}
