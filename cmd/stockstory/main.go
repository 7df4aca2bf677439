// stockstory - a walk-along stock price analysis tool
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"StockStory/internal/config"
	"StockStory/internal/pipeline"
	"StockStory/internal/recorder"
	"StockStory/internal/scheduler"
)

var (
	version  = "0.1.0"
	cfgPath  string
	noCharts bool
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd := &cobra.Command{
		Use:   "stockstory [csv-file]",
		Short: "Elementary time-series analysis of daily stock prices",
		Long: `stockstory loads a daily stock price CSV, cleans it, derives the
Daily Change and 5-day moving average columns, prints summary statistics,
and renders a line and a bar chart.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runOnce,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (default configs/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noCharts, "no-charts", false, "Skip chart rendering")

	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, rec, err := setup(args)
	if err != nil {
		return err
	}
	defer rec.Close()

	p := pipeline.New(cfg, os.Stdout, rec)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [csv-file]",
		Short: "Re-run the analysis on a cron schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rec, err := setup(args)
			if err != nil {
				return err
			}
			defer rec.Close()

			p := pipeline.New(cfg, os.Stdout, rec)
			sched := scheduler.NewScheduler(p)
			if err := sched.Register(cfg.Schedule.Cron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			// First pass right away so an empty schedule window still
			// produces output.
			sched.RunNow()

			log.Printf("[INFO] watching %s (cron %q). Press Ctrl+C to stop.",
				cfg.Input.CSVPath, cfg.Schedule.Cron)
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stockstory version %s\n", version)
		},
	}
}

// setup loads .env and config, applies CLI overrides, and picks the
// recorder (sqlite when configured, noop otherwise).
func setup(args []string) (*config.Config, recorder.Recorder, error) {
	_ = godotenv.Load()

	path := cfgPath
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("STOCKSTORY_CONFIG"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if len(args) == 1 {
		cfg.Input.CSVPath = args[0]
	}
	if noCharts {
		cfg.Charts.Disabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config validation: %w", err)
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	return cfg, rec, nil
}
