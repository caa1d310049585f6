package talent

// Audio feature keys as returned by the Spotify audio-features endpoint.
const (
	Danceability     = "danceability"
	Energy           = "energy"
	Loudness         = "loudness"
	Speechiness      = "speechiness"
	Acousticness     = "acousticness"
	Liveness         = "liveness"
	Valence          = "valence"
	Tempo            = "tempo"
	DurationMs       = "duration_ms"
	Instrumentalness = "instrumentalness"
)

// ReleaseYear is the derived column inserted between duration_ms and instrumentalness.
const ReleaseYear = "release_year"

// Business assumptions applied after the revenue model.
const (
	StreamsPerListener = 2.5
	RevenuePerStream   = 0.004

	// PopularityThreshold splits "sign" from "pass".
	PopularityThreshold = 50.0
	// RevenueThreshold is the monthly revenue considered worth chasing.
	RevenueThreshold = 20000.0
)

// AudioFeatureKeys lists every key AudioFeatures must carry.
var AudioFeatureKeys = []string{
	Danceability,
	Energy,
	Loudness,
	Speechiness,
	Acousticness,
	Liveness,
	Valence,
	Tempo,
	DurationMs,
	Instrumentalness,
}

// AudioFeatures holds the numeric descriptors of a track keyed by their catalog name.
// A key that the catalog did not send is absent, never zero.
type AudioFeatures map[string]float64

// Lookup returns the value for key or a MissingFieldError.
func (a AudioFeatures) Lookup(key string) (float64, error) {
	v, ok := a[key]
	if !ok {
		return 0, &MissingFieldError{Field: key}
	}
	return v, nil
}

// TrackSummary is a single search hit.
type TrackSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []string `json:"artists"`
}

// TrackDetail is the subset of a full catalog track the pipeline consumes.
type TrackDetail struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// PreviewURL is a 30 second mp3 clip. Empty when the catalog has none.
	PreviewURL string `json:"preview_url,omitempty"`
	// ReleaseDate is the album release date with year, month or day precision.
	// Example: 2020-05-01
	ReleaseDate string `json:"release_date"`
	ArtistID    string `json:"artist_id"`
	ArtistName  string `json:"artist_name"`
}

// RevenueEstimate is derived from the revenue model's monthly listener estimate.
type RevenueEstimate struct {
	MonthlyListeners float64 `json:"monthly_listeners"`
	// MonthlyStreams is MonthlyListeners * StreamsPerListener.
	MonthlyStreams float64 `json:"monthly_streams"`
	// MonthlyRevenue is MonthlyStreams * RevenuePerStream, in USD.
	MonthlyRevenue float64 `json:"monthly_revenue"`
}

// NewRevenueEstimate applies the fixed stream and payout assumptions.
func NewRevenueEstimate(monthlyListeners float64) RevenueEstimate {
	streams := monthlyListeners * StreamsPerListener
	return RevenueEstimate{
		MonthlyListeners: monthlyListeners,
		MonthlyStreams:   streams,
		MonthlyRevenue:   streams * RevenuePerStream,
	}
}

// Prediction is the output of the two-stage inference pipeline.
type Prediction struct {
	// Score is the predicted popularity. The model does not bound it, but
	// catalog popularity is trained on a 0 - 100 scale.
	// Example: 63.2
	Score   float64         `json:"score"`
	Revenue RevenueEstimate `json:"revenue"`
}

// Report is a Prediction with the context needed to act on it.
type Report struct {
	ID         string      `json:"id,omitempty"`
	Track      TrackDetail `json:"track"`
	Genres     []string    `json:"genres"`
	Prediction Prediction  `json:"prediction"`

	Promising      bool   `json:"promising"`
	HighRevenue    bool   `json:"high_revenue"`
	Recommendation string `json:"recommendation"`
}

// NewReport derives the signing decision from a prediction.
func NewReport(track TrackDetail, genres []string, p Prediction) Report {
	r := Report{
		Track:       track,
		Genres:      genres,
		Prediction:  p,
		Promising:   p.Score >= PopularityThreshold,
		HighRevenue: p.Revenue.MonthlyRevenue >= RevenueThreshold,
	}
	if r.Promising {
		r.Recommendation = "It seems " + track.ArtistName + " might be a real talent. Let's get in touch."
	} else {
		r.Recommendation = "The predicted score and monthly revenue are pretty low. We should probably not sign " + track.ArtistName + "."
	}
	return r
}
