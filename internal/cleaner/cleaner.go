package cleaner

import (
	"log"
	"sort"
	"time"

	"StockStory/internal/model"
)

// Clean drops every row with a missing value in a required column
// (Date, Open Price, Close Price), then sorts the survivors by Date
// ascending. The sort is stable, so same-day rows keep their input
// order. Rows are reindexed contiguously; an empty result is valid.
// Running Clean on an already-clean table is a no-op.
func Clean(t *model.Table) *model.Table {
	keep := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if !t.RowMissing(i) {
			keep = append(keep, i)
		}
	}
	if dropped := t.Len() - len(keep); dropped > 0 {
		log.Printf("[INFO] dropped %d rows with missing required values", dropped)
	}

	sort.SliceStable(keep, func(a, b int) bool {
		return t.Dates[keep[a]].Before(t.Dates[keep[b]])
	})

	out := &model.Table{
		Dates:  subsetTimes(t.Dates, keep),
		Open:   subset(t.Open, keep),
		Close:  subset(t.Close, keep),
		High:   subset(t.High, keep),
		Low:    subset(t.Low, keep),
		Volume: subset(t.Volume, keep),
	}
	return out
}

func subset(values []float64, idx []int) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

func subsetTimes(values []time.Time, idx []int) []time.Time {
	out := make([]time.Time, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}
