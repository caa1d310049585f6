package cli

import (
	"context"

	"github.com/mager/talentfinder/config"
	"github.com/mager/talentfinder/finder"
	"github.com/mager/talentfinder/history"
	"github.com/mager/talentfinder/logger"
	"github.com/mager/talentfinder/metrics"
	"github.com/mager/talentfinder/predictor"
	"github.com/mager/talentfinder/spotify"
	"github.com/mager/talentfinder/talent"
	"github.com/spf13/cobra"
)

// Finder is what the commands need from a finder.Finder.
type Finder interface {
	Search(ctx context.Context, query string) []talent.TrackSummary
	Evaluate(ctx context.Context, trackID string) (talent.Report, error)
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// Factory builds a Finder and returns a function releasing its resources.
type Factory func(ctx context.Context) (Finder, func(), error)

// NewRootCmd returns the talentfinder-cli command tree.
func NewRootCmd(newFinder Factory) *cobra.Command {
	root := &cobra.Command{
		Use:           "talentfinder-cli",
		Short:         "Predicts how popular a song will be and what its artist could earn",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSearchCmd(newFinder),
		newPredictCmd(newFinder),
		newHistoryCmd(newFinder),
	)
	return root
}

// DefaultFactory wires a Finder from TALENTFINDER_* environment variables.
func DefaultFactory(ctx context.Context) (Finder, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	// Keep the terminal for results.
	if cfg.LogLevel == "info" {
		cfg.LogLevel = "error"
	}

	l, err := logger.ProvideLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	p, err := predictor.ProvidePredictor(cfg, l)
	if err != nil {
		return nil, nil, err
	}
	store, err := history.Open(ctx, l, cfg)
	if err != nil {
		return nil, nil, err
	}

	f := finder.NewFinder(l, spotify.ProvideSpotify(cfg, l), p, store, metrics.ProvideMetrics())
	cleanup := func() {
		store.Close()
		l.Sync()
	}
	return f, cleanup, nil
}
