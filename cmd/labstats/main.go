package main

import (
	"log"
	"os"

	"computer-availability-stats/config"
	"computer-availability-stats/internal/parse"
	"computer-availability-stats/internal/report"
	"computer-availability-stats/internal/schedule"
	"computer-availability-stats/internal/stats"
)

func main() {
	logger := log.New(os.Stdout, "labstats ", log.LstdFlags)

	if len(os.Args) < 2 {
		logger.Fatalf("no input file was specified; usage: %s <state-change-export.csv>", os.Args[0])
	}
	inputPath := os.Args[1]

	// Load configuration
	cfg := config.Default()
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	var windows [7]schedule.Window
	for i, w := range cfg.Schedule.Windows {
		windows[i] = schedule.Window{Open: w.Open, Close: w.Close}
	}
	weekly, err := schedule.New(windows, cfg.Schedule.Tolerance)
	if err != nil {
		logger.Fatalf("invalid schedule configuration: %v", err)
	}

	// Open both outputs before touching the input: an unwritable report
	// destination aborts the run before any computation.
	usageOut, err := os.Create(cfg.Output.UsagePath)
	if err != nil {
		logger.Fatalf("unable to open %s for writing: %v", cfg.Output.UsagePath, err)
	}
	defer usageOut.Close()

	peakOut, err := os.Create(cfg.Output.PeakHoursPath)
	if err != nil {
		logger.Fatalf("unable to open %s for writing: %v", cfg.Output.PeakHoursPath, err)
	}
	defer peakOut.Close()

	in, err := os.Open(inputPath)
	if err != nil {
		logger.Fatalf("unable to open %s for reading: %v", inputPath, err)
	}
	defer in.Close()

	events, err := parse.Events(in, cfg.Input.TimestampLayout)
	if err != nil {
		logger.Fatalf("failed to read %s: %v", inputPath, err)
	}

	acc := stats.NewAccumulator(cfg.Output.DateLayout, cfg.Schedule.EarliestHour, cfg.Schedule.LatestHour)
	kept := 0
	for _, ev := range events {
		if !weekly.Contains(ev.Timestamp) {
			continue
		}
		acc.Observe(ev)
		kept++
	}
	logger.Printf("processed %d events, %d within operating hours", len(events), kept)

	tables, ok := acc.Tables()
	if !ok {
		logger.Fatalf("no events within operating hours; nothing to report")
	}

	if err := report.WriteUsage(usageOut, tables, cfg.Output.DateLayout); err != nil {
		logger.Fatalf("failed to write %s: %v", cfg.Output.UsagePath, err)
	}
	if err := report.WritePeakHours(peakOut, tables, cfg.Output.DateLayout); err != nil {
		logger.Fatalf("failed to write %s: %v", cfg.Output.PeakHoursPath, err)
	}

	logger.Printf("wrote %s and %s", cfg.Output.UsagePath, cfg.Output.PeakHoursPath)
}
