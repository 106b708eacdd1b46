package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/model"
)

func newEditCmd(a *app) *cobra.Command {
	var desc, date, tm, status string
	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Change fields of the item at a 1-based index",
		Long: `Change one or more fields of an item. Unset flags keep their value.

Examples:
  todo edit 2 --description "Buy oat milk"
  todo edit 3 --status done --date 2025-03-01`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseIndex(cmd, args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("description") && !flags.Changed("date") && !flags.Changed("time") && !flags.Changed("status") {
				return usagef("edit: nothing to change (use --description, --date, --time or --status)")
			}

			var patch model.Item
			if flags.Changed("date") {
				if patch.Date, err = model.ParseDate(date); err != nil {
					return err
				}
			}
			if flags.Changed("time") {
				if patch.Time, err = model.ParseTime(tm); err != nil {
					return err
				}
			}
			if flags.Changed("status") {
				if patch.Status, err = model.ParseStatus(status); err != nil {
					return &model.ValidationError{Field: "status", Message: err.Error()}
				}
			}

			it, err := a.mgr.Edit(pos, func(it *model.Item) {
				if flags.Changed("description") {
					it.Description = desc
				}
				if patch.Date != "" {
					it.Date = patch.Date
				}
				if patch.Time != "" {
					it.Time = patch.Time
				}
				if patch.Status != "" {
					it.Status = patch.Status
				}
			})
			if err != nil {
				return err
			}
			a.th.OK(a.stdout, fmt.Sprintf("edited %d: %s", pos+1, it.Description))
			return nil
		},
	}
	cmd.Flags().StringVarP(&desc, "description", "m", "", "new description")
	cmd.Flags().StringVar(&date, "date", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringVar(&tm, "time", "", "new time, HH:MM[:SS]")
	cmd.Flags().StringVarP(&status, "status", "s", "", "new status: Pending, Priority or Done")
	return cmd
}
