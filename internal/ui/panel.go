package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// ProgressBar renders a bar with a done/total counter.
func (t Theme) ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("[%s] %d/%d", bar, done, total)
}

// Panel frames lines in the theme's border.
func (t Theme) Panel(lines []string) string {
	return lipgloss.NewStyle().
		Border(t.BorderShape).
		BorderForeground(t.Border.GetForeground()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// BarChart renders one horizontal bar per status, scaled to the largest
// count. Unknown statuses get their own row only when present.
func (t Theme) BarChart(tally model.Tally, width int) []string {
	if width < 1 {
		width = 1
	}
	max := 0
	for _, s := range model.Statuses {
		if n := tally.Get(s); n > max {
			max = n
		}
	}
	if tally.Unknown > max {
		max = tally.Unknown
	}

	bar := func(n int) string {
		filled := 0
		if max > 0 {
			filled = n * width / max
		}
		if n > 0 && filled == 0 {
			filled = 1
		}
		return strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	}

	lines := make([]string, 0, len(model.Statuses)+1)
	for _, s := range model.Statuses {
		n := tally.Get(s)
		lines = append(lines, fmt.Sprintf("%-8s %s %d", s, t.StatusStyle(s).UnsetStrikethrough().Render(bar(n)), n))
	}
	if tally.Unknown > 0 {
		lines = append(lines, fmt.Sprintf("%-8s %s %d", "Unknown", t.Muted.Render(bar(tally.Unknown)), tally.Unknown))
	}
	return lines
}
