package chart

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"StockStory/internal/model"
)

// Output file names inside the charts directory.
const (
	LineChartFile = "close_vs_ma5.html"
	BarChartFile  = "daily_changes.html"
)

// Renderer writes the two exploration charts as standalone HTML files.
type Renderer struct {
	OutputDir string
}

// New creates a Renderer writing into outputDir.
func New(outputDir string) *Renderer {
	return &Renderer{OutputDir: outputDir}
}

// RenderAll renders the close-vs-MA line chart and the daily-change bar
// chart for a feature-engineered table.
func (r *Renderer) RenderAll(t *model.Table) error {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create charts dir: %w", err)
	}
	if err := r.renderLine(t); err != nil {
		return fmt.Errorf("line chart: %w", err)
	}
	if err := r.renderBar(t); err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	log.Printf("[INFO] charts written to %s", r.OutputDir)
	return nil
}

func (r *Renderer) renderLine(t *model.Table) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Closing Price vs 5-Day Moving Average"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	closeData := make([]opts.LineData, t.Len())
	maData := make([]opts.LineData, t.Len())
	for i := 0; i < t.Len(); i++ {
		closeData[i] = opts.LineData{Value: t.Close[i]}
		maData[i] = opts.LineData{Value: t.MA5[i]}
	}

	line.SetXAxis(axisDates(t.Dates)).
		AddSeries("Closing Price", closeData).
		AddSeries("5-Day MA", maData,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))

	return renderTo(line, filepath.Join(r.OutputDir, LineChartFile))
}

func (r *Renderer) renderBar(t *model.Table) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Daily Price Changes"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Close - Open"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	changeData := make([]opts.BarData, t.Len())
	for i := 0; i < t.Len(); i++ {
		changeData[i] = opts.BarData{Value: t.DailyChange[i]}
	}

	bar.SetXAxis(axisDates(t.Dates)).
		AddSeries("Daily Change", changeData)

	return renderTo(bar, filepath.Join(r.OutputDir, BarChartFile))
}

type htmlRenderer interface {
	Render(w io.Writer) error
}

func renderTo(c htmlRenderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return c.Render(f)
}

func axisDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}
