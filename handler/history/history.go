package history

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mager/talentfinder/finder"
	"github.com/mager/talentfinder/handler/httputil"
	"github.com/mager/talentfinder/history"
	"go.uber.org/zap"
)

type recentLister interface {
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// HistoryHandler lists recent evaluations.
type HistoryHandler struct {
	log    *zap.SugaredLogger
	finder recentLister
}

func (*HistoryHandler) Pattern() string {
	return "/history"
}

// NewHistoryHandler builds a new HistoryHandler.
func NewHistoryHandler(log *zap.SugaredLogger, f *finder.Finder) *HistoryHandler {
	return &HistoryHandler{
		log:    log,
		finder: f,
	}
}

type Response struct {
	Entries []history.Entry `json:"entries"`
}

// List recent evaluations
// @Summary List recent evaluations
// @Tags Prediction
// @Produce json
// @Param limit query int false "Max entries"
// @Success 200 {object} Response
// @Router /history [get]
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := history.DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := h.finder.Recent(r.Context(), limit)
	if err != nil {
		h.log.Errorw("Failed to read history", "error", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, Response{Entries: entries})
}
