package model

import (
	"strings"
)

// Filter selects which items are displayed. The zero value shows all.
type Filter string

// FilterAll passes every item through.
const FilterAll Filter = "All"

// Filters lists the selectable filters in cycling order.
var Filters = []Filter{FilterAll, Filter(StatusPending), Filter(StatusPriority), Filter(StatusDone)}

// ParseFilter accepts "all" (or empty) and the status literals.
func ParseFilter(s string) (Filter, error) {
	if t := strings.TrimSpace(s); t == "" || strings.EqualFold(t, string(FilterAll)) {
		return FilterAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return Filter(st), nil
}

// Match reports whether it passes the filter.
func (f Filter) Match(it Item) bool {
	if f == "" || f == FilterAll {
		return true
	}
	return it.Status == Status(f)
}

// Next returns the filter after f in cycling order.
func (f Filter) Next() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// FilterItems returns the items that match f, in collection order.
func FilterItems(items []Item, f Filter) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Entry is an item in a filtered view together with its position in the
// full collection. Single-item actions address Pos, never the view index.
type Entry struct {
	Pos  int
	Item Item
}

// Select returns the filtered view of items.
func Select(items []Item, f Filter) []Entry {
	out := make([]Entry, 0, len(items))
	for i, it := range items {
		if f.Match(it) {
			out = append(out, Entry{Pos: i, Item: it})
		}
	}
	return out
}

// Tally counts items per status. Values outside the enumeration land in
// Unknown instead of a status bucket.
type Tally struct {
	Pending  int
	Priority int
	Done     int
	Unknown  int
}

// Count builds a Tally over items.
func Count(items []Item) Tally {
	var t Tally
	for _, it := range items {
		switch it.Status {
		case StatusPending:
			t.Pending++
		case StatusPriority:
			t.Priority++
		case StatusDone:
			t.Done++
		default:
			t.Unknown++
		}
	}
	return t
}

// Get returns the count for s; unknown statuses yield 0.
func (t Tally) Get(s Status) int {
	switch s {
	case StatusPending:
		return t.Pending
	case StatusPriority:
		return t.Priority
	case StatusDone:
		return t.Done
	}
	return 0
}

// Total is the number of counted items, Unknown included.
func (t Tally) Total() int {
	return t.Pending + t.Priority + t.Done + t.Unknown
}
