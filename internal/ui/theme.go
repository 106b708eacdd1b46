package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// Theme bundles palette, symbols and box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error lipgloss.Style
	Pending, Priority, Done              lipgloss.Style
	Today, Selected, Border              lipgloss.Style

	BorderShape           lipgloss.Border
	SymToday, SymSelected string
	BarFull, BarEmpty     string
}

// Themes lists the theme names NewTheme understands.
var Themes = []string{"classic", "neon", "mono"}

// NewTheme returns the named theme; unknown names get classic.
func NewTheme(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Priority:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			Done:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
			Today:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			BorderShape: lipgloss.RoundedBorder(),
			SymToday:    "★", SymSelected: "❯",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
			Pending: plain, Priority: plain, Done: plain,
			Today: plain, Selected: plain, Border: plain,
			BorderShape: lipgloss.NormalBorder(),
			SymToday:    "*", SymSelected: ">",
			BarFull: "#", BarEmpty: "-",
		}
	default:
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Priority:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			Done:        lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Today:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
			Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			BorderShape: lipgloss.RoundedBorder(),
			SymToday:    "★", SymSelected: ">",
			BarFull: "█", BarEmpty: "░",
		}
	}
}

// StatusStyle returns the style for items in status s.
func (t Theme) StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusPriority:
		return t.Priority
	case model.StatusDone:
		return t.Done
	}
	return t.Pending
}
