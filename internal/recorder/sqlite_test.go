package recorder

import (
	"math"
	"path/filepath"
	"testing"

	"StockStory/internal/model"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	rec := &RunRecord{
		Source: "data.csv",
		Summary: model.Summary{
			AvgChange: 2.67,
			MaxClose:  108,
			MinClose:  102,
			Rows:      3,
		},
	}
	if err := r.RecordRun(rec); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var count int
	var avg float64
	row := r.db.QueryRow(`SELECT COUNT(*), MAX(avg_change) FROM runs`)
	if err := row.Scan(&count, &avg); err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if math.Abs(avg-2.67) > 1e-9 {
		t.Errorf("avg_change = %v, want 2.67", avg)
	}
}

func TestSQLiteRecorder_NaNSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	nan := math.NaN()
	rec := &RunRecord{
		Source:  "empty.csv",
		Summary: model.Summary{AvgChange: nan, MaxClose: nan, MinClose: nan},
	}
	if err := r.RecordRun(rec); err != nil {
		t.Fatalf("record run with NaN summary: %v", err)
	}

	var avg interface{}
	if err := r.db.QueryRow(`SELECT avg_change FROM runs`).Scan(&avg); err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if avg != nil {
		t.Errorf("NaN summary should store as NULL, got %v", avg)
	}
}
