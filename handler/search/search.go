package search

import (
	"context"
	"net/http"
	"strings"

	"github.com/mager/talentfinder/finder"
	"github.com/mager/talentfinder/handler/httputil"
	"github.com/mager/talentfinder/spotify"
	"github.com/mager/talentfinder/talent"
	"go.uber.org/zap"
)

type searcher interface {
	Search(ctx context.Context, query string) []talent.TrackSummary
}

// SearchHandler lists catalog tracks matching a query.
type SearchHandler struct {
	log    *zap.SugaredLogger
	finder searcher
}

func (*SearchHandler) Pattern() string {
	return "/search"
}

// NewSearchHandler builds a new SearchHandler.
func NewSearchHandler(log *zap.SugaredLogger, f *finder.Finder) *SearchHandler {
	return &SearchHandler{
		log:    log,
		finder: f,
	}
}

type Response struct {
	Results []Track `json:"results"`
}

type Track struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Artists []string `json:"artists"`
	// Label is "<name> by <artists>", the way tracks are offered for selection.
	Label string `json:"label"`
}

// Search tracks on Spotify
// @Summary Search tracks
// @Description Search the catalog for up to five tracks
// @Tags Spotify
// @Produce json
// @Param q query string true "Song name"
// @Success 200 {object} Response
// @Router /search [get]
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "missing search query"})
		return
	}

	h.log.Infow("search", "query", query)

	resp := Response{Results: []Track{}}
	for _, t := range h.finder.Search(r.Context(), query) {
		resp.Results = append(resp.Results, Track{
			ID:      t.ID,
			Name:    t.Name,
			Artists: t.Artists,
			Label:   t.Name + " by " + spotify.ConcatArtists(t.Artists),
		})
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}
