package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show item counts per status",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			tally, err := a.mgr.Stats()
			if err != nil {
				return err
			}
			lines := append([]string{a.th.Title.Render("Status")}, a.th.BarChart(tally, 20)...)
			lines = append(lines, "", a.th.ProgressBar(tally.Done, tally.Total(), 20))
			fmt.Fprintln(a.stdout, a.th.Panel(lines))
			return nil
		},
	}
}
