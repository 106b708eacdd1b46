package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/todo"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError indicates the command line was malformed.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usagef(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ProblemsError indicates the data file failed validation.
type ProblemsError struct {
	Count int
}

func (e *ProblemsError) Error() string {
	if e.Count == 1 {
		return "1 problem found"
	}
	return fmt.Sprintf("%d problems found", e.Count)
}

// ExitCode maps err to a process exit code: usage and input mistakes
// exit 2, everything else 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *UsageError
	var pe *todo.PositionError
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ue), errors.As(err, &pe), errors.As(err, &ve):
		return ExitUsage
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "unknown flag"),
		strings.HasPrefix(err.Error(), "unknown shorthand flag"):
		return ExitUsage
	}
	return ExitFailure
}

// FormatError returns a user-facing message with a hint where one helps.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var pe *todo.PositionError
	if errors.As(err, &pe) {
		msg += "\nHint: run `todo ls --plain` to see valid indexes"
	}
	return msg
}
