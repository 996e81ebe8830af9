package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"resumeflow/internal/models"
)

type SearchService interface {
	SearchJobIDs(ctx context.Context, query string, topK int) []models.CandidateMatch
}

type searchService struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewSearchService(endpoint string, logger *zap.Logger) SearchService {
	return &searchService{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type searchResponse struct {
	Results json.RawMessage `json:"results"`
}

// SearchJobIDs posts the query to the similarity-search endpoint and returns
// the ranked candidates in service order. Any transport or protocol failure
// is logged with the offending query and degrades to an empty list; the
// caller treats that the same as an empty result.
func (s *searchService) SearchJobIDs(ctx context.Context, query string, topK int) []models.CandidateMatch {
	matches, err := s.search(ctx, query, topK)
	if err != nil {
		s.logger.Warn("similarity search failed",
			zap.String("query", query),
			zap.Int("top_k", topK),
			zap.Error(err),
		)
		return []models.CandidateMatch{}
	}

	return matches
}

func (s *searchService) search(ctx context.Context, query string, topK int) ([]models.CandidateMatch, error) {
	body, err := json.Marshal(searchRequest{Query: query, TopK: topK})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search endpoint returned status %d", resp.StatusCode)
	}

	var envelope searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return normalizeSearchResults(envelope.Results)
}

// normalizeSearchResults handles the two response shapes the search service
// may produce: a list of bare integer job ids, or a list of
// {job_id, similarity_score} records. Bare ids get a default score of 0.0;
// record-shaped results pass through unchanged. Normalization happens here
// at the boundary, never downstream.
func normalizeSearchResults(raw json.RawMessage) ([]models.CandidateMatch, error) {
	if len(raw) == 0 {
		return []models.CandidateMatch{}, nil
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err == nil {
		matches := make([]models.CandidateMatch, 0, len(ids))
		for _, id := range ids {
			matches = append(matches, models.CandidateMatch{JobID: id, SimilarityScore: 0.0})
		}
		return matches, nil
	}

	var matches []models.CandidateMatch
	if err := json.Unmarshal(raw, &matches); err != nil {
		return nil, fmt.Errorf("unexpected search results shape: %w", err)
	}

	if matches == nil {
		matches = []models.CandidateMatch{}
	}

	return matches, nil
}
