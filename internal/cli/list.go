package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/session"
	"github.com/Makepad-fr/tada/internal/tui"
)

func newListCmd(a *app) *cobra.Command {
	var (
		status string
		plain  bool
		group  bool
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Long: `List items, optionally only those with one status.

On a terminal this opens the interactive list; use --plain for a
printed list.

Examples:
  todo ls
  todo ls --status priority --plain
  todo ls --plain --group`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(status)
			if err != nil {
				return &UsageError{Message: err.Error()}
			}
			if !plain && !group && a.stdout == os.Stdout && isTerminal(os.Stdout) {
				sess := session.New(a.store.Format())
				sess.Filter = f
				return tui.Run(a.mgr, sess, a.th, tui.WithOpener(a.openManager))
			}
			return printList(a, f, group)
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "show only Pending, Priority or Done")
	cmd.Flags().BoolVar(&plain, "plain", false, "print instead of opening the interactive list")
	cmd.Flags().BoolVarP(&group, "group", "g", false, "group printed items by status (implies --plain)")
	return cmd
}

func printList(a *app, f model.Filter, group bool) error {
	entries, tally, err := a.mgr.List(f)
	if err != nil {
		return err
	}
	now := a.mgr.Now()

	lines := []string{
		a.th.Header(tally, f),
		a.th.Muted.Render(a.th.ProgressBar(tally.Done, tally.Total(), 28)),
		"",
	}
	if group {
		lines = append(lines, a.th.GroupedLines(entries, now)...)
	} else {
		lines = append(lines, a.th.ListLines(entries, -1, now)...)
	}
	lines = append(lines, "", a.th.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	fmt.Fprintln(a.stdout, a.th.Panel(lines))
	return nil
}
