package predict

import (
	"context"
	"net/http"

	"github.com/mager/talentfinder/finder"
	"github.com/mager/talentfinder/handler/httputil"
	"github.com/mager/talentfinder/talent"
	"go.uber.org/zap"
)

type evaluator interface {
	Evaluate(ctx context.Context, trackID string) (talent.Report, error)
}

// PredictHandler evaluates a single track.
type PredictHandler struct {
	log    *zap.SugaredLogger
	finder evaluator
}

func (*PredictHandler) Pattern() string {
	return "/predict"
}

// NewPredictHandler builds a new PredictHandler.
func NewPredictHandler(log *zap.SugaredLogger, f *finder.Finder) *PredictHandler {
	return &PredictHandler{
		log:    log,
		finder: f,
	}
}

type Response struct {
	Report talent.Report `json:"report"`
}

// Predict popularity and revenue
// @Summary Predict popularity and revenue
// @Description Predict the popularity score of a track and the monthly revenue of its artist
// @Tags Prediction
// @Produce json
// @Param id query string true "Spotify track ID"
// @Success 200 {object} Response
// @Failure 422 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /predict [get]
func (h *PredictHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{Error: "missing track id"})
		return
	}

	report, err := h.finder.Evaluate(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, Response{Report: report})
}
