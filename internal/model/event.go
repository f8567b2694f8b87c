package model

import (
	"strings"
	"time"
)

// State classifies a computer's reported availability.
type State string

const (
	StateAvailable   State = "available"
	StateUnavailable State = "unavailable"
)

// ParseState matches raw state text case-insensitively. Only "unavailable"
// opens a session; every other value, recognized or not, is treated as an
// end-of-session candidate rather than rejected.
func ParseState(raw string) State {
	if strings.EqualFold(strings.TrimSpace(raw), string(StateUnavailable)) {
		return StateUnavailable
	}
	return StateAvailable
}

// Event is one state-change record from the lab-management export.
type Event struct {
	Computer  string
	Timestamp time.Time
	State     State
}
