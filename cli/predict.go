package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPredictCmd(newFinder Factory) *cobra.Command {
	var choice int

	cmd := &cobra.Command{
		Use:   "predict [song]",
		Short: "Searches for a song, asks which match to use and predicts its popularity",
		Long: `Searches the catalog, lists up to five matches and reads the selection from
stdin unless --track is given. The selected track's popularity score and the
artist's projected monthly listeners, streams and revenue are then printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, cleanup, err := newFinder(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			tracks := f.Search(cmd.Context(), strings.Join(args, " "))
			if len(tracks) == 0 {
				return errors.New("no tracks found")
			}

			if choice == 0 {
				if err := renderTracks(out, tracks); err != nil {
					return err
				}
				choice, err = prompt(cmd.InOrStdin(), out, len(tracks))
				if err != nil {
					return err
				}
			}
			if choice < 1 || choice > len(tracks) {
				return fmt.Errorf("track must be between 1 and %d", len(tracks))
			}

			report, err := f.Evaluate(cmd.Context(), tracks[choice-1].ID)
			if err != nil {
				return fmt.Errorf("predict %q: %w", tracks[choice-1].Name, err)
			}
			return renderReport(out, report)
		},
	}

	cmd.Flags().IntVarP(&choice, "track", "t", 0, "number of the search result to use (skips the prompt)")
	return cmd
}

func prompt(in io.Reader, out io.Writer, n int) (int, error) {
	fmt.Fprintf(out, "Select a track [1-%d]: ", n)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("reading selection: %w", err)
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q", strings.TrimSpace(line))
	}
	return choice, nil
}
