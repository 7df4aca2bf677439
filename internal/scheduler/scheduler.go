package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"StockStory/internal/pipeline"
)

// Scheduler re-runs the analysis pipeline on a cron schedule, for input
// files that are refreshed externally (watch mode).
type Scheduler struct {
	Cron     *cron.Cron
	Pipeline *pipeline.Pipeline

	mu sync.Mutex // serializes runs if one overruns its slot
}

// NewScheduler creates a Scheduler around p.
func NewScheduler(p *pipeline.Pipeline) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
	}
}

// Register adds the re-analysis job under the given cron spec
// (six fields, seconds first).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the analysis immediately (manual trigger / first pass).
func (s *Scheduler) RunNow() {
	s.runTask()
}

func (s *Scheduler) runTask() {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Println("[INFO] running scheduled analysis")
	sum, err := s.Pipeline.Run()
	if err != nil {
		log.Printf("[ERROR] scheduled analysis: %v", err)
		return
	}
	log.Printf("[INFO] analysis done: %d rows, avg change %.2f", sum.Rows, sum.AvgChange)
}
