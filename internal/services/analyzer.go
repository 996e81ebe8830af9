package services

import (
	"context"
	"fmt"
	"strings"
)

const (
	evaluationTemperature  = 0.2
	queryTemperature       = 0.2
	explanationTemperature = 0.3
	explanationMaxTokens   = 800

	// Hard cap on the generated search query, applied to the model output
	// unconditionally (even mid-keyword).
	searchQueryMaxRunes = 100
)

// MatchExplanationInput carries everything the chain-of-thought analysis
// needs for one recommended posting.
type MatchExplanationInput struct {
	UserSkills      []string
	UserCategory    *string
	JobTitle        string
	JobDescription  string
	SimilarityScore float64
	SearchQuery     string
}

type AnalyzerService interface {
	EvaluateResume(ctx context.Context, text string) (string, error)
	GenerateSearchQuery(ctx context.Context, report string) (string, error)
	GenerateQueryFromReport(ctx context.Context, report string) (string, []string, *string, error)
	ExplainMatch(ctx context.Context, input MatchExplanationInput) string
}

type analyzerService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(gemini GeminiService) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// EvaluateResume implements AnalyzerService. A completion failure here is
// fatal for the run and propagates.
func (a *analyzerService) EvaluateResume(ctx context.Context, text string) (string, error) {
	prompt := a.promptBuilder.BuildEvaluationPrompt(text)

	report, err := a.gemini.GenerateText(ctx, prompt, evaluationTemperature)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate resume: %w", err)
	}

	return report, nil
}

// GenerateSearchQuery implements AnalyzerService. The output is cut to the
// first 100 runes no matter what the model produced.
func (a *analyzerService) GenerateSearchQuery(ctx context.Context, report string) (string, error) {
	prompt := a.promptBuilder.BuildSearchQueryPrompt(report)

	response, err := a.gemini.GenerateText(ctx, prompt, queryTemperature)
	if err != nil {
		return "", fmt.Errorf("failed to generate search query: %w", err)
	}

	return TruncateRunes(strings.TrimSpace(response), searchQueryMaxRunes), nil
}

// GenerateQueryFromReport implements AnalyzerService: skills/category
// extraction and query generation over the same report, returned together.
// The two computations are independent of each other.
func (a *analyzerService) GenerateQueryFromReport(ctx context.Context, report string) (string, []string, *string, error) {
	skills, category := ExtractSkillsAndCategory(report)

	query, err := a.GenerateSearchQuery(ctx, report)
	if err != nil {
		return "", nil, nil, err
	}

	return query, skills, category, nil
}

// ExplainMatch implements AnalyzerService. This is the one place a
// completion failure is converted into degraded-but-present output: the
// returned string is persisted as-is either way.
func (a *analyzerService) ExplainMatch(ctx context.Context, input MatchExplanationInput) string {
	category := ""
	if input.UserCategory != nil {
		category = *input.UserCategory
	}

	prompt := a.promptBuilder.BuildMatchAnalysisPrompt(
		category,
		input.UserSkills,
		input.SearchQuery,
		input.JobTitle,
		input.SimilarityScore,
		input.JobDescription,
	)

	analysis, err := a.gemini.GenerateTextWithSystem(
		ctx,
		MatchAnalystSystemPrompt,
		prompt,
		explanationTemperature,
		explanationMaxTokens,
	)
	if err != nil {
		return fmt.Sprintf("추천 이유 분석 생성 중 오류 발생: %v", err)
	}

	return analysis
}

// TruncateRunes cuts s to at most n runes with no ellipsis or other
// decoration.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
