package finder

import (
	"context"
	"errors"
	"testing"

	"github.com/mager/talentfinder/features"
	"github.com/mager/talentfinder/history"
	"github.com/mager/talentfinder/logger"
	"github.com/mager/talentfinder/metrics"
	"github.com/mager/talentfinder/predictor"
	"github.com/mager/talentfinder/talent"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type fakeCatalog struct {
	results   []talent.TrackSummary
	searchErr error

	track     talent.TrackDetail
	features  talent.AudioFeatures
	detailErr error

	genres    []string
	genresErr error
}

func (c *fakeCatalog) Search(context.Context, string) ([]talent.TrackSummary, error) {
	return c.results, c.searchErr
}

func (c *fakeCatalog) GetTrackAndFeatures(context.Context, string) (talent.TrackDetail, talent.AudioFeatures, error) {
	return c.track, c.features, c.detailErr
}

func (c *fakeCatalog) GetArtistGenres(context.Context, string) ([]string, error) {
	return c.genres, c.genresErr
}

type stubModel struct {
	out   float64
	input []float64
}

func (m *stubModel) Predict(x []float64) (float64, error) {
	m.input = x
	return m.out, nil
}

type identityScaler struct{}

func (identityScaler) Scale(row features.Row) (features.Row, error) { return row, nil }

type memoryStore struct {
	entries []history.Entry
	err     error
}

func (s *memoryStore) Record(_ context.Context, e history.Entry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *memoryStore) Recent(context.Context, int) ([]history.Entry, error) { return s.entries, nil }
func (s *memoryStore) Close() error                                         { return nil }

func sampleCatalog() *fakeCatalog {
	return &fakeCatalog{
		track: talent.TrackDetail{
			ID:          "t1",
			Name:        "Song",
			ReleaseDate: "2020-05-01",
			ArtistID:    "a1",
			ArtistName:  "Newcomer",
		},
		features: talent.AudioFeatures{
			talent.Danceability:     0.8,
			talent.Energy:           0.7,
			talent.Loudness:         -5.0,
			talent.Speechiness:      0.05,
			talent.Acousticness:     0.1,
			talent.Liveness:         0.15,
			talent.Valence:          0.6,
			talent.Tempo:            120.0,
			talent.DurationMs:       210000,
			talent.Instrumentalness: 0.0,
		},
		genres: []string{"german hip hop"},
	}
}

type fixture struct {
	finder     *Finder
	popularity *stubModel
	store      *memoryStore
	metrics    *metrics.Metrics
}

func newFixture(t *testing.T, c Catalog) fixture {
	t.Helper()
	l, _ := logger.NewTestLogger()
	fx := fixture{
		popularity: &stubModel{out: 75},
		store:      &memoryStore{},
		metrics:    metrics.ProvideMetrics(),
	}
	p := &predictor.Predictor{
		Scaler:     identityScaler{},
		Popularity: fx.popularity,
		Revenue:    &stubModel{out: 100000},
	}
	fx.finder = NewFinder(l, c, p, fx.store, fx.metrics)
	return fx
}

func TestEvaluate(t *testing.T) {
	f := newFixture(t, sampleCatalog())

	r, err := f.finder.Evaluate(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, 75.0, r.Prediction.Score)
	assert.InDelta(t, 250000.0, r.Prediction.Revenue.MonthlyStreams, 1e-9)
	assert.InDelta(t, 1000.0, r.Prediction.Revenue.MonthlyRevenue, 1e-9)
	assert.True(t, r.Promising)
	assert.False(t, r.HighRevenue)
	assert.Contains(t, r.Recommendation, "Newcomer")
	assert.Equal(t, []string{"german hip hop"}, r.Genres)

	require.Len(t, f.store.entries, 1)
	assert.Equal(t, f.store.entries[0].ID, r.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Evaluations.WithLabelValues(metrics.OutcomeSigned)))

	// Hip-Hop is genre column 9
	assert.Equal(t, 1.0, f.popularity.input[features.Width+9])
}

func TestEvaluateWithoutGenres(t *testing.T) {
	c := sampleCatalog()
	c.genres = []string{}
	f := newFixture(t, c)

	r, err := f.finder.Evaluate(context.Background(), "t1")
	require.NoError(t, err)

	assert.Empty(t, r.Genres)
	assert.Equal(t, make([]float64, 21), f.popularity.input[features.Width:])
}

func TestEvaluateGenreLookupFailureDegrades(t *testing.T) {
	c := sampleCatalog()
	c.genres = nil
	c.genresErr = &talent.ExternalLookupError{Op: "get artist", Err: errors.New("503")}

	l, logs := logger.NewTestLogger()
	f := newFixture(t, c)
	f.finder.log = l

	r, err := f.finder.Evaluate(context.Background(), "t1")
	require.NoError(t, err)

	assert.Empty(t, r.Genres)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.GenreFallbacks))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestEvaluateDetailFailureAborts(t *testing.T) {
	c := sampleCatalog()
	c.detailErr = &talent.ExternalLookupError{Op: "get track", Err: errors.New("404")}
	f := newFixture(t, c)

	_, err := f.finder.Evaluate(context.Background(), "t1")

	var lookupErr *talent.ExternalLookupError
	assert.True(t, errors.As(err, &lookupErr))
	assert.Empty(t, f.store.entries)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Evaluations.WithLabelValues(metrics.OutcomeLookupFailed)))
}

func TestEvaluateMissingFeatureAborts(t *testing.T) {
	c := sampleCatalog()
	delete(c.features, talent.Tempo)
	f := newFixture(t, c)

	_, err := f.finder.Evaluate(context.Background(), "t1")

	var missing *talent.MissingFieldError
	assert.True(t, errors.As(err, &missing))
	assert.Nil(t, f.popularity.input)
}

func TestEvaluateHistoryFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, sampleCatalog())
	f.store.err = errors.New("disk full")

	r, err := f.finder.Evaluate(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, r.ID)
}

func TestSearch(t *testing.T) {
	c := sampleCatalog()
	c.results = []talent.TrackSummary{{ID: "t1", Name: "Song", Artists: []string{"Newcomer"}}}
	f := newFixture(t, c)

	assert.Equal(t, c.results, f.finder.Search(context.Background(), "song"))

	c.searchErr = errors.New("unauthorized")
	assert.Empty(t, f.finder.Search(context.Background(), "song"))
}
