package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Output   OutputConfig   `yaml:"output"`
}

// InputConfig holds settings for reading the state-change export.
type InputConfig struct {
	// TimestampLayout is the Go reference layout the export's timestamps
	// must match. The lab-management tool occasionally flips formats
	// between exports; the layout is pinned per run, never auto-detected.
	TimestampLayout string `yaml:"timestamp_layout"`
}

// Window is one weekday's operating hours in 24-hour HHMM form.
type Window struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// ScheduleConfig holds the weekly operating-hours schedule used to filter
// out state changes that happen while the facility is closed (overnight
// maintenance reboots make machines appear busy after hours).
type ScheduleConfig struct {
	// Windows lists one window per weekday, Monday first.
	Windows          []Window      `yaml:"windows"`
	ToleranceMinutes int           `yaml:"tolerance_minutes"`
	Tolerance        time.Duration `yaml:"-"` // Derived from ToleranceMinutes

	// EarliestHour and LatestHour bound the hour keys pre-seeded into the
	// peak-hours table. They do not filter anything.
	EarliestHour int `yaml:"earliest_hour"`
	LatestHour   int `yaml:"latest_hour"`
}

// OutputConfig holds the report destinations and date formatting.
type OutputConfig struct {
	DateLayout    string `yaml:"date_layout"`
	UsagePath     string `yaml:"usage_path"`
	PeakHoursPath string `yaml:"peak_hours_path"`
}

// Default returns the configuration matching the facility's normal
// operating hours and the export format currently in use.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			TimestampLayout: "01/02/2006 15:04",
		},
		Schedule: ScheduleConfig{
			Windows: []Window{
				{Open: "0700", Close: "2200"}, // Monday
				{Open: "0700", Close: "2200"},
				{Open: "0700", Close: "2200"},
				{Open: "0700", Close: "2200"},
				{Open: "0700", Close: "1700"}, // Friday
				{Open: "0900", Close: "1700"},
				{Open: "1200", Close: "2000"}, // Sunday
			},
			// Wall clocks around the facility disagree and staff sometimes
			// open early, so be liberal.
			ToleranceMinutes: 10,
			Tolerance:        10 * time.Minute,
			EarliestHour:     6,
			LatestHour:       23,
		},
		Output: OutputConfig{
			DateLayout:    "2006-01-02",
			UsagePath:     "output-computer-usage-per-day.csv",
			PeakHoursPath: "output-peak-hours-per-day.csv",
		},
	}
}

// Load reads the configuration from the given path, layered over Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finalize() error {
	if c.Input.TimestampLayout == "" {
		log.Printf("input.timestamp_layout is not set; defaulting to 01/02/2006 15:04")
		c.Input.TimestampLayout = "01/02/2006 15:04"
	}

	if len(c.Schedule.Windows) != 7 {
		return fmt.Errorf("schedule.windows must list exactly 7 weekday windows (Monday first), got %d", len(c.Schedule.Windows))
	}

	if c.Schedule.ToleranceMinutes < 0 {
		log.Printf("schedule.tolerance_minutes is negative; defaulting to 10")
		c.Schedule.ToleranceMinutes = 10
	}
	c.Schedule.Tolerance = time.Duration(c.Schedule.ToleranceMinutes) * time.Minute

	if c.Schedule.EarliestHour < 0 || c.Schedule.LatestHour > 24 || c.Schedule.EarliestHour >= c.Schedule.LatestHour {
		log.Printf("invalid peak hour bounds [%d, %d); defaulting to [6, 23)", c.Schedule.EarliestHour, c.Schedule.LatestHour)
		c.Schedule.EarliestHour = 6
		c.Schedule.LatestHour = 23
	}

	if c.Output.DateLayout == "" {
		c.Output.DateLayout = "2006-01-02"
	}
	if c.Output.UsagePath == "" {
		c.Output.UsagePath = "output-computer-usage-per-day.csv"
	}
	if c.Output.PeakHoursPath == "" {
		c.Output.PeakHoursPath = "output-peak-hours-per-day.csv"
	}

	return nil
}
