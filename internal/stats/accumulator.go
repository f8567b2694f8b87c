// Package stats reduces the filtered event stream into the two report
// tables. It is pure in-memory state with no I/O; callers feed events in
// input order and read the final tables once the stream is exhausted.
package stats

import (
	"fmt"
	"time"

	"computer-availability-stats/internal/model"
)

// Accumulator pairs unavailable/available transitions into usage sessions
// per (day, computer) and maintains the running aggregate tables.
//
// Only one open session slot is kept per (day, computer). A repeated
// "unavailable" with no intervening "available" overwrites the stored start
// and the earlier start is lost; an "available" with no open slot is
// discarded. Neither is an error, they are known quirks of the export.
type Accumulator struct {
	dateLayout string

	usage map[string]map[string]int       // day -> computer -> minutes
	peak  map[string]map[string]int       // hour label -> day -> session count
	open  map[string]map[string]time.Time // day -> computer -> session start

	// Insertion-ordered registry of every computer seen in the kept
	// stream; defines report column order.
	computers []string
	seen      map[string]bool

	firstDay, lastDay        time.Time
	earliestHour, latestHour int
	observed                 bool
}

// NewAccumulator returns an empty accumulator. Days are keyed by formatting
// timestamps with dateLayout. The peak table's hour keys are pre-seeded for
// [seedEarliest, seedLatest); the seed bounds do not constrain which hours
// are counted.
func NewAccumulator(dateLayout string, seedEarliest, seedLatest int) *Accumulator {
	a := &Accumulator{
		dateLayout: dateLayout,
		usage:      make(map[string]map[string]int),
		peak:       make(map[string]map[string]int),
		open:       make(map[string]map[string]time.Time),
		seen:       make(map[string]bool),
	}
	for h := seedEarliest; h < seedLatest; h++ {
		a.peak[HourLabel(h)] = make(map[string]int)
	}
	return a
}

// Observe feeds one kept event through the session state machine and
// updates the registry and range trackers.
func (a *Accumulator) Observe(ev model.Event) {
	day := ev.Timestamp.Format(a.dateLayout)

	if !a.seen[ev.Computer] {
		a.seen[ev.Computer] = true
		a.computers = append(a.computers, ev.Computer)
	}
	a.trackRanges(ev.Timestamp)

	if ev.State == model.StateUnavailable {
		// Start of a session. An unclosed earlier start is overwritten.
		a.openFor(day)[ev.Computer] = ev.Timestamp
		return
	}

	start, ok := a.open[day][ev.Computer]
	if !ok {
		// End of a session that had no start; drop it.
		return
	}
	delete(a.open[day], ev.Computer)
	a.closeSession(day, ev.Computer, start, ev.Timestamp)
}

// closeSession applies one completed session to both aggregate tables.
func (a *Accumulator) closeSession(day, computer string, start, end time.Time) {
	length := end.Sub(start)
	a.usageFor(day)[computer] += int(length / time.Minute)

	endHour := roundedHour(end)
	startHour := roundedHour(end.Add(-length))

	if startHour == endHour {
		// Short session inside one rounded hour.
		a.peakFor(HourLabel(startHour))[day]++
		return
	}
	for h := startHour; h < endHour; h++ {
		a.peakFor(HourLabel(h))[day]++
	}
}

func (a *Accumulator) trackRanges(t time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	if !a.observed {
		a.observed = true
		a.firstDay, a.lastDay = day, day
		a.earliestHour, a.latestHour = t.Hour(), t.Hour()
		return
	}

	if day.Before(a.firstDay) {
		a.firstDay = day
	}
	if day.After(a.lastDay) {
		a.lastDay = day
	}
	if t.Hour() < a.earliestHour {
		a.earliestHour = t.Hour()
	}
	if t.Hour() > a.latestHour {
		a.latestHour = t.Hour()
	}
}

func (a *Accumulator) openFor(day string) map[string]time.Time {
	m, ok := a.open[day]
	if !ok {
		m = make(map[string]time.Time)
		a.open[day] = m
	}
	return m
}

func (a *Accumulator) usageFor(day string) map[string]int {
	m, ok := a.usage[day]
	if !ok {
		m = make(map[string]int)
		a.usage[day] = m
	}
	return m
}

func (a *Accumulator) peakFor(label string) map[string]int {
	m, ok := a.peak[label]
	if !ok {
		m = make(map[string]int)
		a.peak[label] = m
	}
	return m
}

// Tables is the read-only result of a finished accumulation. Sessions
// still open when the input ends are abandoned and appear in no table.
type Tables struct {
	Usage     map[string]map[string]int // day -> computer -> minutes
	Peak      map[string]map[string]int // hour label -> day -> session count
	Computers []string

	FirstDay, LastDay        time.Time
	EarliestHour, LatestHour int
}

// Tables returns the final aggregate tables. It reports false if no event
// was ever observed, in which case the ranges are meaningless.
func (a *Accumulator) Tables() (Tables, bool) {
	if !a.observed {
		return Tables{}, false
	}
	return Tables{
		Usage:        a.usage,
		Peak:         a.peak,
		Computers:    a.computers,
		FirstDay:     a.firstDay,
		LastDay:      a.lastDay,
		EarliestHour: a.earliestHour,
		LatestHour:   a.latestHour,
	}, true
}

// roundedHour is the session-boundary hour bucket: minutes past the half
// hour round up to the next hour.
func roundedHour(t time.Time) int {
	h := t.Hour()
	if t.Minute() > 29 {
		h++
	}
	return h
}

// HourLabel formats an hour as the peak report's row key (7 -> "0700").
func HourLabel(h int) string {
	return fmt.Sprintf("%02d00", h)
}
