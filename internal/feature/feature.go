package feature

import (
	"fmt"

	"StockStory/internal/calculator"
	"StockStory/internal/model"
)

// MAWindow is the moving-average span in trading days.
const MAWindow = 5

// Engineer appends the two derived columns to a cleaned table:
// Daily Change (close minus open per row) and MA_5 (trailing mean of the
// close over up to MAWindow rows). No rows are skipped or reordered.
func Engineer(t *model.Table) error {
	change, err := calculator.Delta(t.Close, t.Open)
	if err != nil {
		return fmt.Errorf("daily change: %w", err)
	}
	ma, err := calculator.RollingMean(t.Close, MAWindow)
	if err != nil {
		return fmt.Errorf("moving average: %w", err)
	}
	t.DailyChange = change
	t.MA5 = ma
	return nil
}
