package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/Makepad-fr/tada/internal/model"
)

// Report renders the collection as a markdown document: a status table
// followed by one section per status.
func Report(items []model.Item, now time.Time) string {
	tally := model.Count(items)

	var b strings.Builder
	fmt.Fprintf(&b, "# To Do List\n\n_%s_\n\n", now.Format("2006-01-02 15:04"))

	b.WriteString("| Status | Count |\n|---|---:|\n")
	for _, s := range model.Statuses {
		fmt.Fprintf(&b, "| %s | %d |\n", s, tally.Get(s))
	}
	fmt.Fprintf(&b, "| **Total** | **%d** |\n", tally.Total())

	for _, s := range model.Statuses {
		entries := model.Select(items, model.Filter(s))
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", s)
		for _, e := range entries {
			check := " "
			if s == model.StatusDone {
				check = "x"
			}
			line := fmt.Sprintf("- [%s] %d. %s · %s %s", check, e.Pos+1, escapeMarkdown(e.Item.Description), e.Item.Date, e.Item.Time)
			if e.Item.DueToday(now) {
				line += " **(today)**"
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "#", `\#`, "|", `\|`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// RenderMarkdown renders markdown for the terminal. On renderer failure the
// source is returned unchanged.
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
