package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd(newFinder Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "search [song]",
		Short: "Lists up to five tracks matching a song name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, cleanup, err := newFinder(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			tracks := f.Search(cmd.Context(), strings.Join(args, " "))
			if len(tracks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tracks found.")
				return nil
			}
			return renderTracks(cmd.OutOrStdout(), tracks)
		},
	}
}
