// Package schedule decides whether a state-change event happened while the
// facility was open. Machines reboot for overnight maintenance and flip
// their reported state while nobody is around, so everything outside the
// operating window is noise.
package schedule

import (
	"fmt"
	"time"
)

const clockLayout = "1504"

// Window is one weekday's operating hours in 24-hour HHMM form.
type Window struct {
	Open  string
	Close string
}

// Weekly is a week of operating windows, Monday first, widened by a fixed
// tolerance on both ends. Windows that cross midnight are an unsupported
// configuration: the widened open and close times must fall on the same
// calendar day as the event they are checked against.
type Weekly struct {
	windows   [7]Window
	tolerance time.Duration
}

// New validates the window clock strings and returns the schedule.
func New(windows [7]Window, tolerance time.Duration) (*Weekly, error) {
	for i, w := range windows {
		if _, err := time.Parse(clockLayout, w.Open); err != nil {
			return nil, fmt.Errorf("weekday %d: invalid open time %q: %w", i, w.Open, err)
		}
		if _, err := time.Parse(clockLayout, w.Close); err != nil {
			return nil, fmt.Errorf("weekday %d: invalid close time %q: %w", i, w.Close, err)
		}
	}
	return &Weekly{windows: windows, tolerance: tolerance}, nil
}

// Contains reports whether t falls inside the operating window for t's
// weekday, widened by the tolerance. Both widened ends are inclusive.
func (s *Weekly) Contains(t time.Time) bool {
	w := s.windows[mondayIndex(t.Weekday())]

	opens, _ := time.Parse(clockLayout, w.Open)
	closes, _ := time.Parse(clockLayout, w.Close)

	openAt := anchor(t, opens.Add(-s.tolerance))
	closeAt := anchor(t, closes.Add(s.tolerance))

	return !t.Before(openAt) && !t.After(closeAt)
}

// mondayIndex maps Go's Sunday-first weekday onto the Monday-first window
// slice.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// anchor re-dates a bare clock time onto t's calendar day.
func anchor(t, clock time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), clock.Hour(), clock.Minute(), 0, 0, t.Location())
}
