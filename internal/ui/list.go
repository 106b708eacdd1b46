package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Makepad-fr/tada/internal/model"
)

const maxDescription = 80

// Header is the title line with live counts.
func (t Theme) Header(tally model.Tally, f model.Filter) string {
	h := fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s %d",
		t.Title.Render("To Do List"),
		t.Pending.Render("•"), tally.Pending,
		t.Priority.Render("🔥"), tally.Priority,
		t.Success.Render("✔"), tally.Done,
		t.Accent.Render("Total"), tally.Total(),
	)
	if f != "" && f != model.FilterAll {
		h += "  " + t.Muted.Render("filter: "+string(f))
	}
	return h
}

// ItemLine renders one row: cursor, 1-based position, icon, description,
// date and time, and a marker when the item is due today.
func (t Theme) ItemLine(e model.Entry, selected bool, now time.Time) string {
	prefix := "  "
	if selected {
		prefix = t.Selected.Render(t.SymSelected) + " "
	}
	idx := t.Muted.Render(fmt.Sprintf("%2d.", e.Pos+1))

	desc := truncate(e.Item.Description, maxDescription)
	if icon := e.Item.Status.Icon(); icon != "" {
		desc = icon + " " + desc
	}
	desc = t.StatusStyle(e.Item.Status).Render(desc)

	when := t.Muted.Render(strings.TrimSpace(e.Item.Date + " " + e.Item.Time))
	line := fmt.Sprintf("%s%s %s  %s", prefix, idx, desc, when)
	if e.Item.DueToday(now) {
		line += " " + t.Today.Render(t.SymToday+" today")
	}
	return line
}

// ListLines renders every entry; selected is the cursor row or -1.
func (t Theme) ListLines(entries []model.Entry, selected int, now time.Time) []string {
	if len(entries) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		out = append(out, t.ItemLine(e, i == selected, now))
	}
	return out
}

// GroupedLines renders entries under one heading per status, in status
// order. Statuses with no entries are skipped.
func (t Theme) GroupedLines(entries []model.Entry, now time.Time) []string {
	if len(entries) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	var out []string
	for _, s := range model.Statuses {
		var group []string
		for _, e := range entries {
			if e.Item.Status == s {
				group = append(group, t.ItemLine(e, false, now))
			}
		}
		if len(group) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, t.StatusStyle(s).Render(fmt.Sprintf("%s (%d)", s, len(group))))
		out = append(out, group...)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
