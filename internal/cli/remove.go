package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove"},
		Short:   "Remove the item at a 1-based index",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseIndex(cmd, args[0])
			if err != nil {
				return err
			}
			it, err := a.mgr.Remove(pos)
			if err != nil {
				return err
			}
			a.th.OK(a.stdout, fmt.Sprintf("removed %d: %s", pos+1, it.Description))
			return nil
		},
	}
}
