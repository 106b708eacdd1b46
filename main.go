// Command tada is the same binary as cmd/todo, installable from the module root.
package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
