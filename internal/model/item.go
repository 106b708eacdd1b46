package model

import (
	"fmt"
	"strings"
	"time"
)

// Item is the domain model for a todo entry.
// Date and Time are kept in their storage form (YYYY-MM-DD, HH:MM:SS).
type Item struct {
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      Status `json:"status"`
}

// ValidationError indicates an item field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate checks field presence only.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Description) == "" {
		return &ValidationError{Field: "description", Message: "cannot be empty"}
	}
	return nil
}

// DueToday reports whether the item's date is the local calendar day of now.
func (it Item) DueToday(now time.Time) bool {
	return it.Date == now.Format(DateLayout)
}

// Toggle flips the item between done and not done.
func (it *Item) Toggle() {
	it.Status = it.Status.Toggle()
}

// Coercion records a status value that was replaced during normalization.
type Coercion struct {
	Pos int
	Raw string
}

// NormalizeStatuses rewrites every status in place to its canonical literal.
// Values outside the enumeration become Pending; each one is reported.
func NormalizeStatuses(items []Item) []Coercion {
	var out []Coercion
	for i := range items {
		s, err := ParseStatus(string(items[i].Status))
		if err != nil {
			out = append(out, Coercion{Pos: i, Raw: string(items[i].Status)})
			s = StatusPending
		}
		items[i].Status = s
	}
	return out
}
