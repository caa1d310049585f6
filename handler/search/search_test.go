package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/talentfinder/logger"
	"github.com/mager/talentfinder/talent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	query   string
	results []talent.TrackSummary
}

func (f *fakeSearcher) Search(_ context.Context, q string) []talent.TrackSummary {
	f.query = q
	return f.results
}

func TestSearchHandler(t *testing.T) {
	l, _ := logger.NewTestLogger()
	f := &fakeSearcher{results: []talent.TrackSummary{
		{ID: "t1", Name: "Butter", Artists: []string{"BTS", "Megan Thee Stallion"}},
	}}
	h := &SearchHandler{log: l, finder: f}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search?q=butter", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "butter", f.query)

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Butter by BTS, Megan Thee Stallion", resp.Results[0].Label)
}

func TestSearchHandlerNoResults(t *testing.T) {
	l, _ := logger.NewTestLogger()
	h := &SearchHandler{log: l, finder: &fakeSearcher{}}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search?q=nothing", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"results": []}`, rr.Body.String())
}

func TestSearchHandlerMissingQuery(t *testing.T) {
	l, _ := logger.NewTestLogger()
	h := &SearchHandler{log: l, finder: &fakeSearcher{}}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/search?q=%20", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
