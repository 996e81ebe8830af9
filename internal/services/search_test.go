package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resumeflow/internal/models"
)

func newSearchServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestSearchNormalizesBareIDs(t *testing.T) {
	server := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Python, SQL", req.Query)
		assert.Equal(t, 3, req.TopK)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [5, 9]}`))
	})

	svc := NewSearchService(server.URL, zap.NewNop())
	matches := svc.SearchJobIDs(context.Background(), "Python, SQL", 3)

	assert.Equal(t, []models.CandidateMatch{
		{JobID: 5, SimilarityScore: 0.0},
		{JobID: 9, SimilarityScore: 0.0},
	}, matches)
}

func TestSearchPassesThroughScoredRecords(t *testing.T) {
	server := newSearchServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"job_id": 1, "similarity_score": 0.9}, {"job_id": 2, "similarity_score": 0.7}]}`))
	})

	svc := NewSearchService(server.URL, zap.NewNop())
	matches := svc.SearchJobIDs(context.Background(), "query", 3)

	assert.Equal(t, []models.CandidateMatch{
		{JobID: 1, SimilarityScore: 0.9},
		{JobID: 2, SimilarityScore: 0.7},
	}, matches)
}

func TestSearchEmptyResults(t *testing.T) {
	server := newSearchServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": []}`))
	})

	svc := NewSearchService(server.URL, zap.NewNop())
	matches := svc.SearchJobIDs(context.Background(), "query", 3)

	assert.Empty(t, matches)
}

func TestSearchFailureDegradesToEmpty(t *testing.T) {
	server := newSearchServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	svc := NewSearchService(server.URL, zap.NewNop())
	matches := svc.SearchJobIDs(context.Background(), "query", 3)

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestSearchUnreachableEndpointDegradesToEmpty(t *testing.T) {
	svc := NewSearchService("http://127.0.0.1:1/search", zap.NewNop())
	matches := svc.SearchJobIDs(context.Background(), "query", 3)

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestNormalizeSearchResultsRejectsUnknownShape(t *testing.T) {
	_, err := normalizeSearchResults(json.RawMessage(`"not-a-list"`))
	assert.Error(t, err)
}
