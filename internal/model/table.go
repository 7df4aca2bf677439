package model

import (
	"math"
	"time"
)

// Column names as they appear in the input header and in reports.
const (
	ColDate        = "Date"
	ColOpen        = "Open Price"
	ColClose       = "Close Price"
	ColHigh        = "High Price"
	ColLow         = "Low Price"
	ColVolume      = "Volume"
	ColDailyChange = "Daily Change"
	ColMA5         = "MA_5"
)

// RequiredColumns lists the columns every usable row must have.
var RequiredColumns = []string{ColDate, ColOpen, ColClose}

// Table is the column-oriented observation table: one entry per trading
// day across all non-nil columns. A zero Date or a NaN numeric value marks
// a missing cell; optional columns are nil when absent from the input
// file. DailyChange and MA5 stay nil until the feature stage runs.
type Table struct {
	Dates []time.Time
	Open  []float64
	Close []float64

	High   []float64
	Low    []float64
	Volume []float64

	DailyChange []float64
	MA5         []float64
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Dates) }

// RowMissing reports whether row i has a missing value in any required
// column.
func (t *Table) RowMissing(i int) bool {
	return t.Dates[i].IsZero() || math.IsNaN(t.Open[i]) || math.IsNaN(t.Close[i])
}

// Summary holds the scalar metrics of one analysis run. All values are
// NaN when the cleaned table is empty.
type Summary struct {
	AvgChange float64
	MaxClose  float64
	MinClose  float64
	Rows      int
}
