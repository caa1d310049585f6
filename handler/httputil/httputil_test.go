package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/talentfinder/talent"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&talent.MissingFieldError{Field: "tempo"}, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", &talent.ParseError{Text: "x"}), http.StatusUnprocessableEntity},
		{&talent.PredictionError{Model: "popularity", Err: errors.New("x")}, http.StatusUnprocessableEntity},
		{&talent.ExternalLookupError{Op: "get track", Err: errors.New("x")}, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, &talent.MissingFieldError{Field: "tempo"})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "missing audio feature \"tempo\""}`, rr.Body.String())
}
