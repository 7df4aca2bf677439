package report

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"StockStory/internal/model"
)

// Frame converts the table into a gota DataFrame for display and export.
// Dates are rendered as ISO strings since gota carries no time type.
func Frame(t *model.Table) dataframe.DataFrame {
	cols := []series.Series{
		series.New(formatDates(t.Dates), series.String, model.ColDate),
		series.New(t.Open, series.Float, model.ColOpen),
		series.New(t.Close, series.Float, model.ColClose),
	}
	if t.High != nil {
		cols = append(cols, series.New(t.High, series.Float, model.ColHigh))
	}
	if t.Low != nil {
		cols = append(cols, series.New(t.Low, series.Float, model.ColLow))
	}
	if t.Volume != nil {
		cols = append(cols, series.New(t.Volume, series.Float, model.ColVolume))
	}
	if t.DailyChange != nil {
		cols = append(cols, series.New(t.DailyChange, series.Float, model.ColDailyChange))
	}
	if t.MA5 != nil {
		cols = append(cols, series.New(t.MA5, series.Float, model.ColMA5))
	}
	return dataframe.New(cols...)
}

// ExportCSV writes the table, derived columns included, to path.
func ExportCSV(t *model.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	df := Frame(t)
	if df.Err != nil {
		return fmt.Errorf("build frame: %w", df.Err)
	}
	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		if d.IsZero() {
			out[i] = "NaN"
			continue
		}
		out[i] = d.Format("2006-01-02")
	}
	return out
}
