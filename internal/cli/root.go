// Package cli wires the todo command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	stdout, stderr io.Writer
	workDir        string
	getenv         func(string) string

	// root flags
	configPath string
	format     string
	dir        string
	theme      string
	logLevel   string

	cfg    *config.Config
	logger *log.Logger
	store  *store.Store
	mgr    *todo.Manager
	th     ui.Theme
}

// setup resolves configuration and opens the store.
// Precedence: defaults, config file, environment, flags.
func (a *app) setup() error {
	cfg, err := config.Load(a.workDir, a.configPath, a.getenv)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.dir != "" {
		cfg.Dir = a.dir
	}
	if a.theme != "" {
		cfg.Theme = a.theme
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return &UsageError{Message: err.Error()}
	}
	a.cfg = cfg

	a.logger = logging.NewFromConfig(a.stderr, cfg.LogLevel, cfg.LogFormat)
	if cfg.Source != "" {
		a.logger.Debug("config loaded", "path", cfg.Source)
	}
	a.th = ui.NewTheme(cfg.Theme)

	s, err := store.Open(cfg.StoreFormat(), cfg.DataDir(a.workDir), a.logger)
	if err != nil {
		return err
	}
	a.store = s
	a.mgr = todo.New(s, todo.WithLogger(a.logger))
	return nil
}

// openManager returns a manager over format in the configured data directory.
func (a *app) openManager(format store.Format) (*todo.Manager, error) {
	s, err := store.Open(format, a.cfg.DataDir(a.workDir), a.logger)
	if err != nil {
		return nil, err
	}
	return todo.New(s, todo.WithLogger(a.logger)), nil
}

// NewRootCmd builds the command tree writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	a := &app{stdout: stdout, stderr: stderr, workDir: wd, getenv: os.Getenv}
	return newRootCmd(a)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - a single-user to-do list",
		Long: `todo keeps a flat to-do list in a JSON, CSV or SQLite file.

Every command reads the whole list, applies one change and writes the
whole list back. There is no locking: run one todo at a time per file.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("todo version {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Message: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default .tada.yaml or .tada.toml)")
	pf.StringVar(&a.format, "format", "", "storage format: json, csv or sqlite")
	pf.StringVar(&a.dir, "dir", "", "directory holding the data files")
	pf.StringVar(&a.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		newListCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDoneCmd(a),
		newRemoveCmd(a),
		newStatsCmd(a),
		newCheckCmd(a),
		newReportCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Run executes the command line and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(stdout, stderr)
	root.SetArgs(args)
	return execute(root, stderr)
}

func execute(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err != nil {
		ui.NewTheme("classic").Fail(stderr, FormatError(err))
	}
	return ExitCode(err)
}

// usageArgs wraps a cobra argument validator so failures exit 2.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return &UsageError{Message: fmt.Sprintf("%s\nusage: %s", err, cmd.UseLine())}
		}
		return nil
	}
}

// parseIndex converts a 1-based index argument to a collection position.
func parseIndex(cmd *cobra.Command, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, usagef("%s: not a number: %s", cmd.Name(), s)
	}
	return n - 1, nil
}
