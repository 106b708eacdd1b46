package cli

import (
	"os"

	"github.com/Makepad-fr/tada/internal/ui"
)

// isTerminal is swapped out in tests.
var isTerminal = func(f *os.File) bool { return ui.IsTerminal(f) }
