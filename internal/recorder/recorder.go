package recorder

import "StockStory/internal/model"

// RunRecord holds the outcome of one analysis run.
type RunRecord struct {
	Source  string
	Summary model.Summary
}

// Recorder persists run history for later comparison across refreshes of
// the input file.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
