package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"computer-availability-stats/internal/model"
)

// Line parses a single export record of the form "computer,timestamp,state"
// against the pinned timestamp layout.
func Line(line, layout string) (model.Event, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return model.Event{}, fmt.Errorf("expected 3 comma-separated fields, got %d", len(fields))
	}

	ts, err := time.Parse(layout, fields[1])
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to parse timestamp %q: %w", fields[1], err)
	}

	return model.Event{
		Computer:  fields[0],
		Timestamp: ts,
		State:     model.ParseState(fields[2]),
	}, nil
}

// Events reads every record from r. The first malformed record aborts the
// read with an error naming its line number; there is no partial-success
// mode for a bad export.
func Events(r io.Reader, layout string) ([]model.Event, error) {
	var events []model.Event

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ev, err := Line(line, layout)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return events, nil
}
