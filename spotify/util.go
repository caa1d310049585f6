package spotify

import (
	"strings"

	"github.com/mager/talentfinder/talent"
	spot "github.com/zmb3/spotify/v2"
)

// GetFirstArtist returns the first artist
func GetFirstArtist(artists []spot.SimpleArtist) spot.SimpleArtist {
	if len(artists) == 0 {
		return spot.SimpleArtist{Name: "Various Artists"}
	}

	return artists[0]
}

// ArtistNames returns the name of every artist in order
func ArtistNames(artists []spot.SimpleArtist) []string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return names
}

// ConcatArtists returns a comma-separated list of artist names
func ConcatArtists(artists []string) string {
	return strings.Join(artists, ", ")
}

// MapTrack keeps the fields of a full track the pipeline needs.
func MapTrack(ft *spot.FullTrack) talent.TrackDetail {
	artist := GetFirstArtist(ft.Artists)
	return talent.TrackDetail{
		ID:          string(ft.ID),
		Name:        ft.Name,
		PreviewURL:  ft.PreviewURL,
		ReleaseDate: ft.Album.ReleaseDate,
		ArtistID:    string(artist.ID),
		ArtistName:  artist.Name,
	}
}
