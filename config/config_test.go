package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "01/02/2006 15:04", cfg.Input.TimestampLayout)
	assert.Len(t, cfg.Schedule.Windows, 7)
	assert.Equal(t, Window{Open: "0700", Close: "2200"}, cfg.Schedule.Windows[0])
	assert.Equal(t, Window{Open: "1200", Close: "2000"}, cfg.Schedule.Windows[6])
	assert.Equal(t, 10*time.Minute, cfg.Schedule.Tolerance)
	assert.Equal(t, 6, cfg.Schedule.EarliestHour)
	assert.Equal(t, 23, cfg.Schedule.LatestHour)
	assert.Equal(t, "2006-01-02", cfg.Output.DateLayout)
	assert.Equal(t, "output-computer-usage-per-day.csv", cfg.Output.UsagePath)
	assert.Equal(t, "output-peak-hours-per-day.csv", cfg.Output.PeakHoursPath)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, `
input:
  timestamp_layout: "2006-01-02 15:04:05"
schedule:
  tolerance_minutes: 5
output:
  usage_path: usage.csv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2006-01-02 15:04:05", cfg.Input.TimestampLayout)
	assert.Equal(t, 5*time.Minute, cfg.Schedule.Tolerance)
	assert.Equal(t, "usage.csv", cfg.Output.UsagePath)
	// Untouched settings keep their defaults.
	assert.Len(t, cfg.Schedule.Windows, 7)
	assert.Equal(t, "output-peak-hours-per-day.csv", cfg.Output.PeakHoursPath)
}

func TestLoad_ReplacesSchedule(t *testing.T) {
	path := writeTempConfig(t, `
schedule:
  windows:
    - {open: "0800", close: "2000"}
    - {open: "0800", close: "2000"}
    - {open: "0800", close: "2000"}
    - {open: "0800", close: "2000"}
    - {open: "0800", close: "1800"}
    - {open: "1000", close: "1600"}
    - {open: "1000", close: "1600"}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Window{Open: "0800", Close: "2000"}, cfg.Schedule.Windows[0])
	assert.Equal(t, Window{Open: "1000", Close: "1600"}, cfg.Schedule.Windows[6])
}

func TestLoad_RejectsPartialWeek(t *testing.T) {
	path := writeTempConfig(t, `
schedule:
  windows:
    - {open: "0700", close: "2200"}
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidBoundsFallBack(t *testing.T) {
	path := writeTempConfig(t, `
schedule:
  earliest_hour: 25
  latest_hour: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Schedule.EarliestHour)
	assert.Equal(t, 23, cfg.Schedule.LatestHour)
}
