package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGemini struct {
	response   string
	err        error
	lastPrompt string
	lastSystem string
}

func (s *stubGemini) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGemini) GenerateTextWithSystem(_ context.Context, system, prompt string, _ float32, _ int32) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestGenerateSearchQueryTruncation(t *testing.T) {
	// The 100-character cap is a hard contract regardless of model output
	// length, even when it cuts a keyword in half.
	long := strings.Repeat("데이터분석, ", 50)
	stub := &stubGemini{response: long}
	analyzer := NewAnalyzerService(stub)

	query, err := analyzer.GenerateSearchQuery(context.Background(), sampleReport)
	require.NoError(t, err)

	assert.Equal(t, 100, utf8.RuneCountInString(query))
	assert.Equal(t, string([]rune(strings.TrimSpace(long))[:100]), query)
}

func TestGenerateSearchQueryShortOutputUntouched(t *testing.T) {
	stub := &stubGemini{response: "  데이터 분석, Python, SQL  "}
	analyzer := NewAnalyzerService(stub)

	query, err := analyzer.GenerateSearchQuery(context.Background(), sampleReport)
	require.NoError(t, err)

	assert.Equal(t, "데이터 분석, Python, SQL", query)
}

func TestGenerateQueryFromReport(t *testing.T) {
	stub := &stubGemini{response: "데이터 분석가, Python, SQL, Tableau"}
	analyzer := NewAnalyzerService(stub)

	query, skills, category, err := analyzer.GenerateQueryFromReport(context.Background(), sampleReport)
	require.NoError(t, err)

	assert.Equal(t, "데이터 분석가, Python, SQL, Tableau", query)
	assert.Equal(t, []string{"Python", "SQL", "Tableau"}, skills)
	require.NotNil(t, category)
	assert.Equal(t, "데이터 분석가", *category)
	assert.Contains(t, stub.lastPrompt, sampleReport)
}

func TestEvaluateResumePropagatesFailure(t *testing.T) {
	stub := &stubGemini{err: errors.New("completion endpoint down")}
	analyzer := NewAnalyzerService(stub)

	_, err := analyzer.EvaluateResume(context.Background(), "이력서 텍스트")
	assert.Error(t, err)
}

func TestExplainMatchNeverFails(t *testing.T) {
	stub := &stubGemini{err: errors.New("completion endpoint down")}
	analyzer := NewAnalyzerService(stub)

	reason := analyzer.ExplainMatch(context.Background(), MatchExplanationInput{
		JobTitle:    "백엔드 엔지니어",
		SearchQuery: "Go, PostgreSQL",
	})

	// Failure converts to a persistable message string, never an error.
	assert.Contains(t, reason, "오류 발생")
	assert.Contains(t, reason, "completion endpoint down")
}

func TestExplainMatchUsesSystemPrompt(t *testing.T) {
	stub := &stubGemini{response: "적합한 추천입니다."}
	analyzer := NewAnalyzerService(stub)

	category := "데이터 분석가"
	reason := analyzer.ExplainMatch(context.Background(), MatchExplanationInput{
		UserSkills:      []string{"Python", "SQL"},
		UserCategory:    &category,
		JobTitle:        "데이터 분석가",
		JobDescription:  "SQL 기반 분석 업무",
		SimilarityScore: 0.91,
		SearchQuery:     "데이터 분석, SQL",
	})

	assert.Equal(t, "적합한 추천입니다.", reason)
	assert.Equal(t, MatchAnalystSystemPrompt, stub.lastSystem)
	assert.Contains(t, stub.lastPrompt, "Python, SQL")
	assert.Contains(t, stub.lastPrompt, "0.910")
}

func TestMatchAnalysisPromptTruncatesDescription(t *testing.T) {
	pb := NewPromptBuilder()
	description := strings.Repeat("가", 1500)

	prompt := pb.BuildMatchAnalysisPrompt("", nil, "쿼리", "직무", 0.5, description)

	assert.Contains(t, prompt, strings.Repeat("가", 1000))
	assert.NotContains(t, prompt, strings.Repeat("가", 1001))
	// Missing skills and category degrade to placeholder text.
	assert.Contains(t, prompt, "정보 없음")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "가나다", TruncateRunes("가나다", 5))
	assert.Equal(t, "가나", TruncateRunes("가나다", 2))
	assert.Equal(t, "", TruncateRunes("가나다", 0))
}
