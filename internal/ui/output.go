package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSize returns the size of f, or 80x24 when it is not a terminal.
func TerminalSize(f *os.File) (width, height int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// OK prints a success line.
func (t Theme) OK(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Success.Render("✔ "+msg))
}

// Fail prints an error line.
func (t Theme) Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, t.Error.Render("✖ "+msg))
}
