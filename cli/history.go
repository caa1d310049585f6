package cli

import (
	"fmt"

	"github.com/mager/talentfinder/history"
	"github.com/spf13/cobra"
)

func newHistoryCmd(newFinder Factory) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists recent predictions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, cleanup, err := newFinder(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := f.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No predictions recorded.")
				return nil
			}
			return renderHistory(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().IntVarP(&limit, "number", "n", history.DefaultLimit, "number of entries to show")
	return cmd
}
