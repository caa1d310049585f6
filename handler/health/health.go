package health

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/mager/talentfinder/config"
	"github.com/mager/talentfinder/predictor"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// HealthHandler reports whether the server can evaluate tracks.
type HealthHandler struct {
	log       *zap.SugaredLogger
	cfg       config.Config
	predictor *predictor.Predictor
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, cfg config.Config, p *predictor.Predictor) *HealthHandler {
	return &HealthHandler{
		log:       log,
		cfg:       cfg,
		predictor: p,
	}
}

type Response struct {
	Server   bool     `json:"server"`
	Spotify  bool     `json:"spotify"`
	Models   bool     `json:"models"`
	History  string   `json:"history"`
	Degraded []string `json:"degraded"`
}

// Health check
// @Summary Health check
// @Description Reports catalog credentials and loaded model artifacts
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("health check")

	checks := map[string]bool{
		"spotify": h.cfg.SpotifyID != "" && h.cfg.SpotifySecret != "",
		"models":  h.predictor != nil && h.predictor.Popularity != nil && h.predictor.Revenue != nil,
	}

	resp := Response{
		Server:   true,
		Spotify:  checks["spotify"],
		Models:   checks["models"],
		History:  h.cfg.HistoryDriver,
		Degraded: []string{},
	}
	if resp.History == "" {
		resp.History = "none"
	}

	names := maps.Keys(checks)
	sort.Strings(names)
	for _, name := range names {
		if !checks[name] {
			resp.Degraded = append(resp.Degraded, name)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
