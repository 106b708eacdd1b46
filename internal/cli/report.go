package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/ui"
)

func newReportCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a markdown summary of the list",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.mgr.Items()
			if err != nil {
				return err
			}
			md := ui.Report(items, a.mgr.Now())
			if raw {
				fmt.Fprint(a.stdout, md)
				return nil
			}
			width := 80
			if a.stdout == os.Stdout {
				width, _ = ui.TerminalSize(os.Stdout)
			}
			fmt.Fprintln(a.stdout, ui.RenderMarkdown(md, width))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown source instead of rendering it")
	return cmd
}
