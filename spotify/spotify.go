package spotify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mager/talentfinder/config"
	"github.com/mager/talentfinder/talent"
	spot "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"
)

// SearchLimit caps how many tracks Search returns.
const SearchLimit = 5

type SpotifyClient struct {
	Client *spot.Client

	httpClient *http.Client
	baseURL    string
	log        *zap.SugaredLogger
}

// ProvideSpotify builds an app-only client. The token is fetched lazily and
// refreshed by the oauth2 transport.
func ProvideSpotify(cfg config.Config, l *zap.SugaredLogger) *SpotifyClient {
	l.Info("setting up spotify client")

	creds := &clientcredentials.Config{
		ClientID:     cfg.SpotifyID,
		ClientSecret: cfg.SpotifySecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	return NewSpotifyClient(creds.Client(context.Background()), cfg.SpotifyBaseURL, l)
}

// NewSpotifyClient wraps an already authenticated HTTP client.
func NewSpotifyClient(httpClient *http.Client, baseURL string, l *zap.SugaredLogger) *SpotifyClient {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &SpotifyClient{
		Client:     spot.New(httpClient, spot.WithBaseURL(baseURL)),
		httpClient: httpClient,
		baseURL:    baseURL,
		log:        l,
	}
}

// Search returns up to SearchLimit tracks matching query.
func (c *SpotifyClient) Search(ctx context.Context, query string) ([]talent.TrackSummary, error) {
	results, err := c.Client.Search(ctx, query, spot.SearchTypeTrack, spot.Limit(SearchLimit))
	if err != nil {
		return nil, &talent.ExternalLookupError{Op: "search", Err: err}
	}

	var out []talent.TrackSummary
	if results.Tracks == nil {
		return out, nil
	}
	for _, item := range results.Tracks.Tracks {
		if len(out) == SearchLimit {
			break
		}
		out = append(out, talent.TrackSummary{
			ID:      string(item.ID),
			Name:    item.Name,
			Artists: ArtistNames(item.Artists),
		})
	}
	return out, nil
}

// GetTrackAndFeatures fetches a track and its audio features.
func (c *SpotifyClient) GetTrackAndFeatures(ctx context.Context, trackID string) (talent.TrackDetail, talent.AudioFeatures, error) {
	ft, err := c.Client.GetTrack(ctx, spot.ID(trackID))
	if err != nil {
		return talent.TrackDetail{}, nil, &talent.ExternalLookupError{Op: "get track", Err: err}
	}

	af, err := c.getAudioFeatures(ctx, trackID)
	if err != nil {
		return talent.TrackDetail{}, nil, &talent.ExternalLookupError{Op: "get audio features", Err: err}
	}

	return MapTrack(ft), af, nil
}

// GetArtistGenres returns the genres the catalog assigns to an artist.
func (c *SpotifyClient) GetArtistGenres(ctx context.Context, artistID string) ([]string, error) {
	artist, err := c.Client.GetArtist(ctx, spot.ID(artistID))
	if err != nil {
		return nil, &talent.ExternalLookupError{Op: "get artist", Err: err}
	}
	return artist.Genres, nil
}

// getAudioFeatures decodes the payload by key so a missing field stays
// missing instead of becoming a zero in spot.AudioFeatures.
func (c *SpotifyClient) getAudioFeatures(ctx context.Context, trackID string) (talent.AudioFeatures, error) {
	url := c.baseURL + "audio-features/" + trackID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	af := make(talent.AudioFeatures, len(talent.AudioFeatureKeys))
	for _, key := range talent.AudioFeatureKeys {
		if v, ok := payload[key].(float64); ok {
			af[key] = v
		}
	}
	return af, nil
}

var Options = ProvideSpotify
