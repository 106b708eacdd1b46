package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/model"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		date, tm string
		priority bool
	)
	cmd := &cobra.Command{
		Use:   "add <description...>",
		Short: "Add a new item",
		Long: `Add a new item. The description can be multiple words.

Date and time default to now. New items are Pending, or Priority with
--priority.

Examples:
  todo add Buy milk
  todo add "Pay rent" --date 2025-02-01 --time 9:00 --priority`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			it := model.Item{
				Description: strings.Join(args, " "),
				Status:      model.StatusPending,
			}
			if priority {
				it.Status = model.StatusPriority
			}
			var err error
			if date != "" {
				if it.Date, err = model.ParseDate(date); err != nil {
					return err
				}
			}
			if tm != "" {
				if it.Time, err = model.ParseTime(tm); err != nil {
					return err
				}
			}
			pos, err := a.mgr.Add(it)
			if err != nil {
				return err
			}
			a.th.OK(a.stdout, fmt.Sprintf("added %d", pos+1))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "due date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&tm, "time", "", "due time, HH:MM[:SS] (default now)")
	cmd.Flags().BoolVarP(&priority, "priority", "p", false, "flag the item as urgent")
	return cmd
}
