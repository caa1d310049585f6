package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mager/talentfinder/talent"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps pipeline errors to a status and a JSON body.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusFor(err), ErrorResponse{Error: err.Error()})
}

// StatusFor picks the HTTP status for err.
func StatusFor(err error) int {
	var (
		missing    *talent.MissingFieldError
		parse      *talent.ParseError
		prediction *talent.PredictionError
		lookup     *talent.ExternalLookupError
	)
	switch {
	case errors.As(err, &missing), errors.As(err, &parse), errors.As(err, &prediction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &lookup):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
