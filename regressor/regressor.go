// Package regressor loads exported regression models and evaluates them.
//
// Two artifact kinds are understood, both JSON:
//
//	{"kind": "linear", "n_features": 32, "coefficients": [...], "intercept": 12.5}
//
//	{"kind": "tree_ensemble", "n_features": 32, "aggregation": "mean",
//	 "trees": [{"nodes": [{"feature": 3, "threshold": 0.1, "left": 1, "right": 2}, ...]}]}
//
// Tree nodes are stored flat; a node with left == -1 is a leaf and carries
// value. "mean" averages the trees (random forest). "sum" scales the total by
// learning_rate and adds base_score (gradient boosting).
package regressor

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/mager/talentfinder/talent"
)

// Model is a pre-trained regressor.
type Model interface {
	Predict(x []float64) (float64, error)
}

// ErrDimension is returned when an input does not match the trained width.
var ErrDimension = errors.New("input width does not match model")

const (
	KindLinear       = "linear"
	KindTreeEnsemble = "tree_ensemble"
)

type artifact struct {
	Kind      string `json:"kind"`
	NFeatures int    `json:"n_features"`

	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`

	Aggregation  string  `json:"aggregation"`
	LearningRate float64 `json:"learning_rate"`
	BaseScore    float64 `json:"base_score"`
	Trees        []Tree  `json:"trees"`
}

// Load reads a model artifact from path.
func Load(path string) (Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &talent.ArtifactLoadError{Path: path, Err: err}
	}
	m, err := Parse(b)
	if err != nil {
		return nil, &talent.ArtifactLoadError{Path: path, Err: err}
	}
	return m, nil
}

// Parse decodes and validates a model artifact.
func Parse(b []byte) (Model, error) {
	var a artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, err
	}
	if a.NFeatures <= 0 {
		return nil, errors.New("n_features must be positive")
	}

	switch a.Kind {
	case KindLinear:
		return newLinear(a.NFeatures, a.Coefficients, a.Intercept)
	case KindTreeEnsemble:
		return newEnsemble(a)
	default:
		return nil, fmt.Errorf("unknown model kind %q", a.Kind)
	}
}

// Linear is an ordinary least squares style model.
type Linear struct {
	coefficients []float64
	intercept    float64
}

func newLinear(n int, coef []float64, intercept float64) (*Linear, error) {
	if len(coef) != n {
		return nil, fmt.Errorf("linear model has %d coefficients for %d features", len(coef), n)
	}
	return &Linear{coefficients: coef, intercept: intercept}, nil
}

func (m *Linear) Predict(x []float64) (float64, error) {
	if len(x) != len(m.coefficients) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimension, len(x), len(m.coefficients))
	}
	y := m.intercept
	for i, c := range m.coefficients {
		y += c * x[i]
	}
	return y, nil
}
