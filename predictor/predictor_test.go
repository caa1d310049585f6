package predictor

import (
	"errors"
	"testing"

	"github.com/mager/talentfinder/config"
	"github.com/mager/talentfinder/features"
	"github.com/mager/talentfinder/logger"
	"github.com/mager/talentfinder/talent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	out   float64
	err   error
	input []float64
}

func (m *stubModel) Predict(x []float64) (float64, error) {
	m.input = x
	return m.out, m.err
}

type identityScaler struct{}

func (identityScaler) Scale(row features.Row) (features.Row, error) { return row, nil }

func sampleFeatures() talent.AudioFeatures {
	return talent.AudioFeatures{
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
	}
}

func testConfig() config.Config {
	return config.Config{
		ScalerPath:          "testdata/scaler.json",
		PopularityModelPath: "testdata/popularity.json",
		RevenueModelPath:    "testdata/revenue.json",
	}
}

func TestPredictVectorRevenueArithmetic(t *testing.T) {
	popularity := &stubModel{out: 75}
	revenue := &stubModel{out: 100000}
	p := &Predictor{Scaler: identityScaler{}, Popularity: popularity, Revenue: revenue}

	got, err := p.PredictVector(make([]float64, Width))
	require.NoError(t, err)

	assert.Equal(t, 75.0, got.Score)
	assert.Equal(t, []float64{75}, revenue.input)
	assert.InDelta(t, 100000.0, got.Revenue.MonthlyListeners, 1e-9)
	assert.InDelta(t, 250000.0, got.Revenue.MonthlyStreams, 1e-9)
	assert.InDelta(t, 1000.0, got.Revenue.MonthlyRevenue, 1e-9)
}

func TestVectorLayout(t *testing.T) {
	p := &Predictor{Scaler: identityScaler{}}

	v, err := p.Vector(sampleFeatures(), "2020-05-01", []string{"k-pop"})
	require.NoError(t, err)
	require.Len(t, v, 32)

	assert.Equal(t, []float64{0.8, 0.7, -5.0, 0.05, 0.1, 0.15, 0.6, 120.0, 210000, 2020, 0.0}, v[:11])
	for i, cell := range v[11:] {
		if i == 13 {
			assert.Equal(t, 1.0, cell, "K-Pop column")
			continue
		}
		assert.Zero(t, cell, "genre column %d", i)
	}
}

func TestPredictEmptyGenres(t *testing.T) {
	popularity := &stubModel{out: 42}
	p := &Predictor{Scaler: identityScaler{}, Popularity: popularity, Revenue: &stubModel{out: 10}}

	got, err := p.Predict(sampleFeatures(), "1999", nil)
	require.NoError(t, err)

	assert.Equal(t, 42.0, got.Score)
	assert.Equal(t, make([]float64, 21), popularity.input[11:])
}

func TestPredictErrors(t *testing.T) {
	missing := sampleFeatures()
	delete(missing, talent.Tempo)

	p := &Predictor{Scaler: identityScaler{}, Popularity: &stubModel{}, Revenue: &stubModel{}}

	_, err := p.Predict(missing, "2020", nil)
	var missingErr *talent.MissingFieldError
	assert.True(t, errors.As(err, &missingErr))

	_, err = p.Predict(sampleFeatures(), "soon", nil)
	var parseErr *talent.ParseError
	assert.True(t, errors.As(err, &parseErr))

	_, err = p.PredictVector(make([]float64, 31))
	var predErr *talent.PredictionError
	assert.True(t, errors.As(err, &predErr))

	failing := &Predictor{Scaler: identityScaler{}, Popularity: &stubModel{out: 60}, Revenue: &stubModel{err: errors.New("boom")}}
	_, err = failing.Predict(sampleFeatures(), "2020", nil)
	require.True(t, errors.As(err, &predErr))
	assert.Equal(t, "revenue", predErr.Model)
}

func TestProvidePredictor(t *testing.T) {
	l, _ := logger.NewTestLogger()

	p, err := ProvidePredictor(testConfig(), l)
	require.NoError(t, err)

	got, err := p.Predict(sampleFeatures(), "2020-05-01", []string{"dance pop"})
	require.NoError(t, err)

	assert.InDelta(t, 75.0, got.Score, 1e-9)
	assert.InDelta(t, 100000.0, got.Revenue.MonthlyListeners, 1e-6)
	assert.InDelta(t, 250000.0, got.Revenue.MonthlyStreams, 1e-6)
	assert.InDelta(t, 1000.0, got.Revenue.MonthlyRevenue, 1e-6)

	again, err := p.Predict(sampleFeatures(), "2020-05-01", nil)
	require.NoError(t, err)
	assert.InDelta(t, 65.0, again.Score, 1e-9)
}

func TestProvidePredictorMissingArtifact(t *testing.T) {
	l, _ := logger.NewTestLogger()
	cfg := testConfig()
	cfg.PopularityModelPath = "testdata/nope.json"

	_, err := ProvidePredictor(cfg, l)

	var loadErr *talent.ArtifactLoadError
	assert.True(t, errors.As(err, &loadErr))
}
