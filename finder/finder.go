package finder

import (
	"context"

	"github.com/mager/talentfinder/history"
	"github.com/mager/talentfinder/metrics"
	"github.com/mager/talentfinder/predictor"
	"github.com/mager/talentfinder/spotify"
	"github.com/mager/talentfinder/talent"
	"go.uber.org/zap"
)

// Catalog is the music catalog the finder reads from.
type Catalog interface {
	Search(ctx context.Context, query string) ([]talent.TrackSummary, error)
	GetTrackAndFeatures(ctx context.Context, trackID string) (talent.TrackDetail, talent.AudioFeatures, error)
	GetArtistGenres(ctx context.Context, artistID string) ([]string, error)
}

var _ Catalog = (*spotify.SpotifyClient)(nil)

// Finder runs one evaluation per call. Nothing computed for one call is
// reused by the next.
type Finder struct {
	log       *zap.SugaredLogger
	catalog   Catalog
	predictor *predictor.Predictor
	history   history.Store
	metrics   *metrics.Metrics
}

func NewFinder(
	log *zap.SugaredLogger,
	catalog Catalog,
	p *predictor.Predictor,
	store history.Store,
	m *metrics.Metrics,
) *Finder {
	return &Finder{
		log:       log,
		catalog:   catalog,
		predictor: p,
		history:   store,
		metrics:   m,
	}
}

// ProvideFinder adapts NewFinder to the spotify client fx provides.
func ProvideFinder(
	log *zap.SugaredLogger,
	spotifyClient *spotify.SpotifyClient,
	p *predictor.Predictor,
	store history.Store,
	m *metrics.Metrics,
) *Finder {
	return NewFinder(log, spotifyClient, p, store, m)
}

// Search lists candidate tracks. A catalog failure is logged and reported as
// no results.
func (f *Finder) Search(ctx context.Context, query string) []talent.TrackSummary {
	tracks, err := f.catalog.Search(ctx, query)
	if err != nil {
		f.log.Errorw("Error searching for track", "query", query, "error", err)
		return []talent.TrackSummary{}
	}
	return tracks
}

// Evaluate predicts popularity and revenue for a track.
func (f *Finder) Evaluate(ctx context.Context, trackID string) (talent.Report, error) {
	l := f.log.With("track_id", trackID)

	track, af, err := f.catalog.GetTrackAndFeatures(ctx, trackID)
	if err != nil {
		l.Errorw("Error getting track information and audio features", "error", err)
		f.metrics.Evaluations.WithLabelValues(metrics.OutcomeLookupFailed).Inc()
		return talent.Report{}, err
	}

	genres := []string{}
	if track.ArtistID != "" {
		g, err := f.catalog.GetArtistGenres(ctx, track.ArtistID)
		if err != nil {
			l.Warnw("Continuing without artist genres", "artist_id", track.ArtistID, "error", err)
			f.metrics.GenreFallbacks.Inc()
		} else if g != nil {
			genres = g
		}
	}

	p, err := f.predictor.Predict(af, track.ReleaseDate, genres)
	if err != nil {
		l.Errorw("Prediction failed", "error", err)
		f.metrics.Evaluations.WithLabelValues(metrics.OutcomeFailed).Inc()
		return talent.Report{}, err
	}

	report := talent.NewReport(track, genres, p)
	f.metrics.Observe(p.Score, report.Promising)

	entry := history.NewEntry(report)
	if err := f.history.Record(ctx, entry); err != nil {
		l.Errorw("Failed to record prediction", "error", err)
	} else {
		report.ID = entry.ID
	}

	l.Infow("Evaluated track",
		"artist", track.ArtistName,
		"score", p.Score,
		"monthly_revenue", p.Revenue.MonthlyRevenue,
		"promising", report.Promising,
	)
	return report, nil
}

// Recent returns the latest recorded evaluations.
func (f *Finder) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	return f.history.Recent(ctx, limit)
}
