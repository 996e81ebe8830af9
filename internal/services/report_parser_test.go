package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `1. 강점: 다양한 데이터 분석 프로젝트 경험이 있고, SQL 활용 능력이 뛰어납니다.
2. 약점: 클라우드 환경 경험이 부족합니다.
3. 개선점: 포트폴리오에 성과 지표를 추가하면 좋겠습니다.
4. 직무 카테고리: 데이터 분석가
5. 기술 스택: Python, SQL, Tableau`

func TestExtractSkillsAndCategory(t *testing.T) {
	skills, category := ExtractSkillsAndCategory(sampleReport)

	assert.Equal(t, []string{"Python", "SQL", "Tableau"}, skills)
	require.NotNil(t, category)
	assert.Equal(t, "데이터 분석가", *category)
}

func TestExtractSkillsAlternateLabelsAndDelimiters(t *testing.T) {
	report := "기술 목록: Go • Kubernetes · PostgreSQL\n직무 유형: 백엔드 엔지니어"

	skills, category := ExtractSkillsAndCategory(report)

	assert.Equal(t, []string{"Go", "Kubernetes", "PostgreSQL"}, skills)
	require.NotNil(t, category)
	assert.Equal(t, "백엔드 엔지니어", *category)
}

func TestExtractSkillsFirstMatchWins(t *testing.T) {
	report := "기술 스택: Python\n기술 스택: Java, C++"

	skills, _ := ExtractSkillsAndCategory(report)

	assert.Equal(t, []string{"Python"}, skills)
}

func TestExtractSkillsMissingMarkers(t *testing.T) {
	skills, category := ExtractSkillsAndCategory("아무 마커도 없는 자유 형식 텍스트입니다.")

	assert.Empty(t, skills)
	assert.NotNil(t, skills, "missing skills marker yields an empty list, not nil")
	assert.Nil(t, category)
}

func TestParseReportSections(t *testing.T) {
	strength, weakness, improvement := ParseReportSections("1. 강점: A\n2. 약점: B\n3. 개선점: C\n4. 직무 카테고리: 기타")

	require.NotNil(t, strength)
	require.NotNil(t, weakness)
	require.NotNil(t, improvement)
	assert.Equal(t, "A", *strength)
	assert.Equal(t, "B", *weakness)
	assert.Equal(t, "C", *improvement)
}

func TestParseReportSectionsMultiline(t *testing.T) {
	strength, weakness, improvement := ParseReportSections(sampleReport)

	require.NotNil(t, strength)
	assert.Equal(t, "다양한 데이터 분석 프로젝트 경험이 있고, SQL 활용 능력이 뛰어납니다.", *strength)
	require.NotNil(t, weakness)
	assert.Equal(t, "클라우드 환경 경험이 부족합니다.", *weakness)
	require.NotNil(t, improvement)
	assert.Equal(t, "포트폴리오에 성과 지표를 추가하면 좋겠습니다.", *improvement)
}

func TestParseReportSectionsMissingMarkers(t *testing.T) {
	// The weakness marker is missing: both the weakness section and the
	// strength section (which lost its "2." terminator) degrade to nil.
	strength, weakness, improvement := ParseReportSections("1. 강점: A\n3. 개선점: C\n4. 기타")

	assert.Nil(t, strength)
	assert.Nil(t, weakness)
	require.NotNil(t, improvement)
	assert.Equal(t, "C", *improvement)
}

func TestParseReportSectionsDegradesToNil(t *testing.T) {
	strength, weakness, improvement := ParseReportSections("형식이 전혀 다른 응답")

	assert.Nil(t, strength)
	assert.Nil(t, weakness)
	assert.Nil(t, improvement)
}
