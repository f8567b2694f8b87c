// Package report renders the finished aggregate tables as CSV grids.
// Cells are plain identifiers, integers, and dates, so rows are joined
// with commas directly; no quoting is performed.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"computer-availability-stats/internal/stats"
)

// WriteUsage renders the per-computer usage-minutes grid: one column per
// registered computer, one row per day.
func WriteUsage(w io.Writer, t stats.Tables, dateLayout string) error {
	if err := writeRow(w, append([]string{""}, t.Computers...)); err != nil {
		return err
	}

	for _, day := range dayRange(t, dateLayout) {
		cells := make([]string, 0, len(t.Computers)+1)
		cells = append(cells, day)
		for _, computer := range t.Computers {
			cells = append(cells, strconv.Itoa(t.Usage[day][computer]))
		}
		if err := writeRow(w, cells); err != nil {
			return err
		}
	}
	return nil
}

// WritePeakHours renders the concurrent-sessions grid: one column per day,
// one row per hour in [EarliestHour, LatestHour).
func WritePeakHours(w io.Writer, t stats.Tables, dateLayout string) error {
	days := dayRange(t, dateLayout)

	if err := writeRow(w, append([]string{""}, days...)); err != nil {
		return err
	}

	for h := t.EarliestHour; h < t.LatestHour; h++ {
		label := stats.HourLabel(h)
		cells := make([]string, 0, len(days)+1)
		cells = append(cells, label)
		for _, day := range days {
			cells = append(cells, strconv.Itoa(t.Peak[label][day]))
		}
		if err := writeRow(w, cells); err != nil {
			return err
		}
	}
	return nil
}

// dayRange lists the report's day columns/rows. Two quirks of the original
// report format are preserved deliberately: the range excludes the last
// calendar day, and dates are rebuilt from the first day's year and month
// plus a day number, so an export spanning a month boundary produces wrong
// dates.
func dayRange(t stats.Tables, dateLayout string) []string {
	var days []string
	for day := t.FirstDay.Day(); day < t.LastDay.Day(); day++ {
		d := time.Date(t.FirstDay.Year(), t.FirstDay.Month(), day, 0, 0, 0, 0, t.FirstDay.Location())
		days = append(days, d.Format(dateLayout))
	}
	return days
}

func writeRow(w io.Writer, cells []string) error {
	_, err := fmt.Fprintf(w, "%s\n", strings.Join(cells, ","))
	return err
}
