package predictor

import (
	"fmt"

	"github.com/mager/talentfinder/config"
	"github.com/mager/talentfinder/features"
	"github.com/mager/talentfinder/genre"
	"github.com/mager/talentfinder/regressor"
	"github.com/mager/talentfinder/scaler"
	"github.com/mager/talentfinder/talent"
	"go.uber.org/zap"
)

// Width is the length of the vector the popularity model consumes.
var Width = features.Width + genre.Width

// RowScaler transforms raw numeric feature rows.
type RowScaler interface {
	Scale(row features.Row) (features.Row, error)
}

// Predictor chains the scaler and the two regressors. It holds no per-request
// state and can be shared across requests.
type Predictor struct {
	Scaler     RowScaler
	Popularity regressor.Model
	Revenue    regressor.Model
}

// ProvidePredictor loads the scaler and both models named in cfg.
func ProvidePredictor(cfg config.Config, l *zap.SugaredLogger) (*Predictor, error) {
	s, err := scaler.Load(cfg.ScalerPath)
	if err != nil {
		return nil, err
	}
	popularity, err := regressor.Load(cfg.PopularityModelPath)
	if err != nil {
		return nil, err
	}
	revenue, err := regressor.Load(cfg.RevenueModelPath)
	if err != nil {
		return nil, err
	}

	l.Infow("Loaded model artifacts",
		"scaler", cfg.ScalerPath,
		"popularity_model", cfg.PopularityModelPath,
		"revenue_model", cfg.RevenueModelPath,
	)

	return &Predictor{Scaler: s, Popularity: popularity, Revenue: revenue}, nil
}

// Vector builds the scaled numeric columns followed by the genre one-hot columns.
func (p *Predictor) Vector(af talent.AudioFeatures, releaseDate string, genres []string) ([]float64, error) {
	raw, err := features.Assemble(af, releaseDate)
	if err != nil {
		return nil, err
	}
	scaled, err := p.Scaler.Scale(raw)
	if err != nil {
		return nil, &talent.PredictionError{Model: "scaler", Err: err}
	}

	v := make([]float64, 0, Width)
	v = append(v, scaled...)
	v = append(v, genre.Encode(genres)...)
	return v, nil
}

// Predict estimates the popularity score and the revenue it implies.
func (p *Predictor) Predict(af talent.AudioFeatures, releaseDate string, genres []string) (talent.Prediction, error) {
	v, err := p.Vector(af, releaseDate, genres)
	if err != nil {
		return talent.Prediction{}, err
	}
	return p.PredictVector(v)
}

// PredictVector runs both models on a prepared feature vector.
func (p *Predictor) PredictVector(v []float64) (talent.Prediction, error) {
	if len(v) != Width {
		return talent.Prediction{}, &talent.PredictionError{
			Model: "popularity",
			Err:   fmt.Errorf("%w: got %d, want %d", regressor.ErrDimension, len(v), Width),
		}
	}

	score, err := p.Popularity.Predict(v)
	if err != nil {
		return talent.Prediction{}, &talent.PredictionError{Model: "popularity", Err: err}
	}

	listeners, err := p.Revenue.Predict([]float64{score})
	if err != nil {
		return talent.Prediction{}, &talent.PredictionError{Model: "revenue", Err: err}
	}

	return talent.Prediction{
		Score:   score,
		Revenue: talent.NewRevenueEstimate(listeners),
	}, nil
}
