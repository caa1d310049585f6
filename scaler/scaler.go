package scaler

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/mager/talentfinder/features"
	"github.com/mager/talentfinder/talent"
)

// Artifact is the on-disk form of a fitted robust scaler.
//
//	{
//	  "columns": ["danceability", ...],
//	  "center":  [0.64, ...],
//	  "scale":   [0.21, ...]
//	}
//
// Center holds the per-column median and Scale the interquartile range.
type Artifact struct {
	Columns []string  `json:"columns,omitempty"`
	Center  []float64 `json:"center"`
	Scale   []float64 `json:"scale"`
}

// Scaler applies a pre-fitted median/IQR transform to raw feature rows.
// It is read-only after construction and safe to share.
type Scaler struct {
	center []float64
	scale  []float64
}

// Load reads a scaler artifact from path.
func Load(path string) (*Scaler, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &talent.ArtifactLoadError{Path: path, Err: err}
	}

	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, &talent.ArtifactLoadError{Path: path, Err: err}
	}

	s, err := New(a)
	if err != nil {
		return nil, &talent.ArtifactLoadError{Path: path, Err: err}
	}
	return s, nil
}

// New validates a against the raw feature layout.
func New(a Artifact) (*Scaler, error) {
	if len(a.Center) != features.Width || len(a.Scale) != features.Width {
		return nil, fmt.Errorf("want %d columns, got %d centers and %d scales",
			features.Width, len(a.Center), len(a.Scale))
	}
	if a.Columns != nil {
		if len(a.Columns) != features.Width {
			return nil, fmt.Errorf("want %d column names, got %d", features.Width, len(a.Columns))
		}
		for i, col := range a.Columns {
			if col != features.Columns[i] {
				return nil, fmt.Errorf("column %d is %q, want %q", i, col, features.Columns[i])
			}
		}
	}

	s := &Scaler{
		center: append([]float64(nil), a.Center...),
		scale:  make([]float64, features.Width),
	}
	for i, v := range a.Scale {
		// A constant column has zero IQR and is left unscaled.
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}
	return s, nil
}

// Scale returns (v - median) / IQR for each column of row.
func (s *Scaler) Scale(row features.Row) (features.Row, error) {
	if len(row) != len(s.center) {
		return nil, errors.New("scaler: row width mismatch")
	}
	out := make(features.Row, len(row))
	for i, v := range row {
		out[i] = (v - s.center[i]) / s.scale[i]
	}
	return out, nil
}

// Unscale is the inverse of Scale.
func (s *Scaler) Unscale(row features.Row) (features.Row, error) {
	if len(row) != len(s.center) {
		return nil, errors.New("scaler: row width mismatch")
	}
	out := make(features.Row, len(row))
	for i, v := range row {
		out[i] = v*s.scale[i] + s.center[i]
	}
	return out, nil
}
