package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-gota/gota/series"

	"StockStory/internal/calculator"
	"StockStory/internal/model"
)

// DefaultHeadRows is how many leading rows Print shows.
const DefaultHeadRows = 5

// Reporter writes the head/summary/statistics report and the data story
// for one analysis run.
type Reporter struct {
	Out      io.Writer
	HeadRows int
}

// New creates a Reporter writing to out.
func New(out io.Writer, headRows int) *Reporter {
	if headRows <= 0 {
		headRows = DefaultHeadRows
	}
	return &Reporter{Out: out, HeadRows: headRows}
}

// Print shows the first rows, the per-column summary, and descriptive
// statistics of the numeric columns. An empty table is reported as such,
// with NaN statistics.
func (r *Reporter) Print(t *model.Table) {
	fmt.Fprintln(r.Out, sectionStyle.Render(fmt.Sprintf("First %d rows:", r.HeadRows)))
	r.printHead(t)
	fmt.Fprintln(r.Out)

	fmt.Fprintln(r.Out, sectionStyle.Render("Column info & data types:"))
	r.printInfo(t)
	fmt.Fprintln(r.Out)

	fmt.Fprintln(r.Out, sectionStyle.Render("Basic stats for numeric columns:"))
	r.printDescribe(t)
	fmt.Fprintln(r.Out)
}

// Summarize computes the scalar summary metrics. Mean/max/min of an empty
// table are NaN, not an error.
func (r *Reporter) Summarize(t *model.Table) model.Summary {
	return model.Summary{
		AvgChange: calculator.Mean(t.DailyChange),
		MaxClose:  calculator.Max(t.Close),
		MinClose:  calculator.Min(t.Close),
		Rows:      t.Len(),
	}
}

// PrintStory writes the three currency-formatted metrics and the closing
// insight line.
func (r *Reporter) PrintStory(sum model.Summary) {
	fmt.Fprintln(r.Out, metricStyle.Render(fmt.Sprintf("Average daily price change: $%.2f", sum.AvgChange)))
	fmt.Fprintln(r.Out, metricStyle.Render(fmt.Sprintf("Maximum closing price: $%.2f", sum.MaxClose)))
	fmt.Fprintln(r.Out, metricStyle.Render(fmt.Sprintf("Minimum closing price: $%.2f", sum.MinClose)))
	fmt.Fprintln(r.Out)
	fmt.Fprintln(r.Out, insightStyle.Render(
		"Insight: The 5-day moving average smooths short-term wiggles to reveal trend direction."))
}

func (r *Reporter) printHead(t *model.Table) {
	if t.Len() == 0 {
		fmt.Fprintln(r.Out, "(empty table)")
		return
	}
	n := r.HeadRows
	if n > t.Len() {
		n = t.Len()
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	df := Frame(t)
	if df.Err != nil {
		fmt.Fprintf(r.Out, "(frame error: %v)\n", df.Err)
		return
	}
	fmt.Fprintln(r.Out, df.Subset(idx))
}

func (r *Reporter) printInfo(t *model.Table) {
	fmt.Fprintf(r.Out, "%-14s %9s  %s\n", "Column", "Non-Null", "Type")
	nonNullDates := 0
	for _, d := range t.Dates {
		if !d.IsZero() {
			nonNullDates++
		}
	}
	fmt.Fprintf(r.Out, "%-14s %9d  %s\n", model.ColDate, nonNullDates, "time")
	for _, col := range numericColumns(t) {
		fmt.Fprintf(r.Out, "%-14s %9d  %s\n", col.name, len(dropNaN(col.values)), "float")
	}
	fmt.Fprintf(r.Out, "%d rows total\n", t.Len())
}

func (r *Reporter) printDescribe(t *model.Table) {
	cols := numericColumns(t)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-7s", ""))
	for _, col := range cols {
		b.WriteString(fmt.Sprintf(" %14s", col.name))
	}
	b.WriteString("\n")

	rows := []struct {
		label string
		value func(colStats) float64
	}{
		{"count", func(s colStats) float64 { return float64(s.count) }},
		{"mean", func(s colStats) float64 { return s.mean }},
		{"std", func(s colStats) float64 { return s.std }},
		{"min", func(s colStats) float64 { return s.min }},
		{"25%", func(s colStats) float64 { return s.q25 }},
		{"50%", func(s colStats) float64 { return s.q50 }},
		{"75%", func(s colStats) float64 { return s.q75 }},
		{"max", func(s colStats) float64 { return s.max }},
	}

	stats := make([]colStats, len(cols))
	for i, col := range cols {
		stats[i] = describe(col.name, col.values)
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-7s", row.label))
		for _, s := range stats {
			if row.label == "count" {
				b.WriteString(fmt.Sprintf(" %14d", s.count))
				continue
			}
			b.WriteString(fmt.Sprintf(" %14.4f", row.value(s)))
		}
		b.WriteString("\n")
	}
	fmt.Fprint(r.Out, b.String())
}

type namedColumn struct {
	name   string
	values []float64
}

func numericColumns(t *model.Table) []namedColumn {
	cols := []namedColumn{
		{model.ColOpen, t.Open},
		{model.ColClose, t.Close},
	}
	if t.High != nil {
		cols = append(cols, namedColumn{model.ColHigh, t.High})
	}
	if t.Low != nil {
		cols = append(cols, namedColumn{model.ColLow, t.Low})
	}
	if t.Volume != nil {
		cols = append(cols, namedColumn{model.ColVolume, t.Volume})
	}
	if t.DailyChange != nil {
		cols = append(cols, namedColumn{model.ColDailyChange, t.DailyChange})
	}
	if t.MA5 != nil {
		cols = append(cols, namedColumn{model.ColMA5, t.MA5})
	}
	return cols
}

type colStats struct {
	count                              int
	mean, std, min, q25, q50, q75, max float64
}

// describe computes descriptive statistics over the non-missing values of
// one column, pandas describe() style.
func describe(name string, values []float64) colStats {
	clean := dropNaN(values)
	if len(clean) == 0 {
		nan := math.NaN()
		return colStats{0, nan, nan, nan, nan, nan, nan, nan}
	}
	s := series.New(clean, series.Float, name)
	return colStats{
		count: len(clean),
		mean:  s.Mean(),
		std:   s.StdDev(),
		min:   s.Min(),
		q25:   s.Quantile(0.25),
		q50:   s.Quantile(0.50),
		q75:   s.Quantile(0.75),
		max:   s.Max(),
	}
}

func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
