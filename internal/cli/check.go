package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the data file",
		Long: `Validate the data file against the item schema and list every
problem: missing fields, empty descriptions, malformed dates or times,
and unknown statuses.

Commands that read the list tolerate these problems: an unreadable file
is treated as empty and an unknown status as Pending.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, path, err := checkData(a.store)
			if err != nil {
				return err
			}
			if len(problems) == 0 {
				a.th.OK(a.stdout, path+": ok")
				return nil
			}
			for _, p := range problems {
				fmt.Fprintf(a.stdout, "%s: %s\n", path, p)
			}
			return &ProblemsError{Count: len(problems)}
		},
	}
}

// checkData validates JSON files directly so syntax errors surface; other
// formats are read raw and validated through their JSON encoding.
func checkData(s *store.Store) ([]jsonstore.Problem, string, error) {
	src := s.Source()
	if js, ok := src.(*jsonstore.Store); ok {
		problems, err := jsonstore.Check(js.Path())
		return problems, js.Path(), err
	}
	items, err := s.LoadRaw()
	if err != nil {
		return nil, src.Path(), err
	}
	b, err := jsonstore.Encode(items)
	if err != nil {
		return nil, src.Path(), err
	}
	problems, err := jsonstore.CheckBytes(b)
	return problems, src.Path(), err
}
