package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The report parser is coupled to the markers the evaluation prompt
// requests; these stay in sync or extraction silently degrades.
func TestEvaluationPromptRequestsParsableMarkers(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildEvaluationPrompt("이력서 본문")

	assert.Contains(t, prompt, "1. 강점")
	assert.Contains(t, prompt, "2. 약점")
	assert.Contains(t, prompt, "3. 개선점")
	assert.Contains(t, prompt, "4. 직무 카테고리")
	assert.Contains(t, prompt, "5. 기술 스택")
	assert.Contains(t, prompt, "이력서 본문")
}

func TestSearchQueryPromptConstraints(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildSearchQueryPrompt("리포트")

	assert.Contains(t, prompt, "100자")
	assert.Contains(t, prompt, "10개")
	assert.Contains(t, prompt, "리포트")
}
