package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/model"
)

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index>",
		Short: "Toggle done for the item at a 1-based index",
		Long: `Mark an item done, or undo it when it is already done.

An undone item goes back to Pending.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseIndex(cmd, args[0])
			if err != nil {
				return err
			}
			it, err := a.mgr.Toggle(pos)
			if err != nil {
				return err
			}
			verb := "done"
			if it.Status != model.StatusDone {
				verb = "undone"
			}
			a.th.OK(a.stdout, fmt.Sprintf("%s %d: %s", verb, pos+1, it.Description))
			return nil
		},
	}
}
