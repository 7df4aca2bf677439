package pipeline

import (
	"fmt"
	"io"
	"log"

	"StockStory/internal/chart"
	"StockStory/internal/cleaner"
	"StockStory/internal/config"
	"StockStory/internal/feature"
	"StockStory/internal/loader"
	"StockStory/internal/model"
	"StockStory/internal/recorder"
	"StockStory/internal/report"
)

// Pipeline runs the four analysis stages (load, clean, derive, report)
// over one input file. Input errors abort the run; an empty table after
// cleaning is reported with NaN statistics instead.
type Pipeline struct {
	Config   *config.Config
	Reporter *report.Reporter
	Recorder recorder.Recorder
}

// New creates a Pipeline writing its report to out.
func New(cfg *config.Config, out io.Writer, rec recorder.Recorder) *Pipeline {
	return &Pipeline{
		Config:   cfg,
		Reporter: report.New(out, cfg.Report.HeadRows),
		Recorder: rec,
	}
}

// Run executes one pass and returns the summary metrics.
func (p *Pipeline) Run() (model.Summary, error) {
	cfg := p.Config

	t, err := loader.Load(cfg.Input.CSVPath, cfg.Input.NAValues)
	if err != nil {
		return model.Summary{}, fmt.Errorf("load: %w", err)
	}

	t = cleaner.Clean(t)
	if err := feature.Engineer(t); err != nil {
		return model.Summary{}, fmt.Errorf("features: %w", err)
	}

	p.Reporter.Print(t)
	sum := p.Reporter.Summarize(t)
	p.Reporter.PrintStory(sum)

	if !cfg.Charts.Disabled {
		if err := chart.New(cfg.Charts.OutputDir).RenderAll(t); err != nil {
			return sum, fmt.Errorf("charts: %w", err)
		}
	}
	if cfg.Export.CSVPath != "" {
		if err := report.ExportCSV(t, cfg.Export.CSVPath); err != nil {
			return sum, fmt.Errorf("export: %w", err)
		}
		log.Printf("[INFO] engineered table exported to %s", cfg.Export.CSVPath)
	}

	if err := p.Recorder.RecordRun(&recorder.RunRecord{
		Source:  cfg.Input.CSVPath,
		Summary: sum,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	return sum, nil
}
