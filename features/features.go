package features

import (
	"errors"
	"strings"
	"time"

	"github.com/mager/talentfinder/talent"
)

// Columns is the raw numeric column order. The scaler artifact is fitted on
// exactly this order.
var Columns = []string{
	talent.Danceability,
	talent.Energy,
	talent.Loudness,
	talent.Speechiness,
	talent.Acousticness,
	talent.Liveness,
	talent.Valence,
	talent.Tempo,
	talent.DurationMs,
	talent.ReleaseYear,
	talent.Instrumentalness,
}

// Width is the number of raw numeric columns.
var Width = len(Columns)

var dateFormats = []string{"2006-01-02", "2006-01", "2006", time.RFC3339}

// Row is a single raw feature row in Columns order.
type Row []float64

// ReleaseYear extracts the year from a catalog release date.
func ReleaseYear(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &talent.ParseError{Text: text, Err: errors.New("empty date")}
	}

	var err error
	for _, format := range dateFormats {
		var t time.Time
		t, err = time.Parse(format, s)
		if err == nil {
			return t.Year(), nil
		}
	}
	return 0, &talent.ParseError{Text: text, Err: err}
}

// Assemble builds the raw feature row for a track.
func Assemble(af talent.AudioFeatures, releaseDate string) (Row, error) {
	year, err := ReleaseYear(releaseDate)
	if err != nil {
		return nil, err
	}

	row := make(Row, 0, Width)
	for _, col := range Columns {
		if col == talent.ReleaseYear {
			row = append(row, float64(year))
			continue
		}
		v, err := af.Lookup(col)
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}
	return row, nil
}
