package services

import (
	"fmt"
	"strings"
)

// MatchAnalystSystemPrompt is the persona for the match-explanation calls.
const MatchAnalystSystemPrompt = "당신은 채용공고 추천 시스템의 전문 분석가입니다. 객관적이고 논리적인 분석을 제공합니다."

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildEvaluationPrompt asks the model for the five-section Korean report.
// The report parser depends on these exact numbered markers and labels.
func (pb *PromptBuilder) BuildEvaluationPrompt(resumeText string) string {
	return fmt.Sprintf(`당신은 경력 컨설턴트입니다. 아래 이력서를 평가하고, 반드시 다음 형식의 한국어 리포트를 작성해 주세요.

1. 강점: (이력서에서 드러나는 강점을 근거와 함께 설명)
2. 약점: (보완이 필요한 약점을 근거와 함께 설명)
3. 개선점: (이력서를 개선할 구체적인 방법 제안)
4. 직무 카테고리: (가장 적합한 직무 카테고리 한 가지)
5. 기술 스택: (이력서에서 확인되는 기술을 쉼표로 구분하여 나열)

각 항목의 번호와 제목은 위 형식 그대로 유지해 주세요.

이력서 내용:
%s`, resumeText)
}

// BuildSearchQueryPrompt asks for a compact keyword query for similarity
// search. The caller enforces the 100-character cap regardless of what the
// model returns.
func (pb *PromptBuilder) BuildSearchQueryPrompt(report string) string {
	return fmt.Sprintf(`다음 이력서 평가 리포트를 바탕으로 채용공고 검색에 사용할 키워드 검색어를 생성해 주세요.

규칙:
- 쉼표로 구분된 키워드만 출력 (설명 금지)
- 키워드는 최대 10개
- 전체 길이는 100자 이내
- 핵심 직무 카테고리와 기술 키워드만 포함

이력서 평가 리포트:
%s

검색어:`, report)
}

// BuildMatchAnalysisPrompt builds the chain-of-thought justification prompt
// for one recommended posting. The description is truncated to its first
// 1000 characters before inclusion.
func (pb *PromptBuilder) BuildMatchAnalysisPrompt(userCategory string, userSkills []string, searchQuery, jobTitle string, similarityScore float64, jobDescription string) string {
	formattedSkills := "정보 없음"
	if len(userSkills) > 0 {
		formattedSkills = strings.Join(userSkills, ", ")
	}

	if userCategory == "" {
		userCategory = "정보 없음"
	}

	description := []rune(jobDescription)
	if len(description) > 1000 {
		description = description[:1000]
	}

	return fmt.Sprintf(`아래 정보를 바탕으로 이 채용공고가 사용자에게 추천된 이유를 단계적으로 분석해 주세요.

사용자 직무 카테고리: %s
사용자 기술 스택: %s
검색 쿼리: %s
공고 제목: %s
유사도 점수: %.3f
공고 설명:
%s

분석에 포함할 내용:
1. 유사도 점수가 이 값으로 나온 이유
2. 사용자 기술 스택과 공고 요구사항의 일치 정도
3. 직무 카테고리 관점의 적합성
4. 종합적인 추천 적절성 판단`,
		userCategory, formattedSkills, searchQuery, jobTitle, similarityScore, string(description))
}
