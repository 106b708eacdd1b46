package model

import (
	"fmt"
	"strings"
)

// Status is the closed set of item states.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusPriority Status = "Priority"
	StatusDone     Status = "Done"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusPending, StatusPriority, StatusDone}

// ParseStatus accepts the three status literals, ignoring case and
// surrounding space.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want Pending, Priority or Done)", s)
}

// Valid reports whether s is one of the canonical literals.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPriority, StatusDone:
		return true
	}
	return false
}

// Toggle returns Pending for a done item and Done for anything else.
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusPending
	}
	return StatusDone
}

// Icon is the marker shown before the description.
func (s Status) Icon() string {
	switch s {
	case StatusPriority:
		return "🔥"
	case StatusDone:
		return "✔"
	}
	return ""
}
