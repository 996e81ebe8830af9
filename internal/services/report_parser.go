package services

import (
	"regexp"
	"strings"
)

// The evaluation report is plain model output shaped only by the prompt in
// BuildEvaluationPrompt. Extraction is therefore best-effort pattern
// matching: a missing marker degrades to an empty list or nil, never an
// error.

var (
	skillsLineRe   = regexp.MustCompile(`(?:기술\s*스택|기술\s*목록)[^\n]*:\s*([^\n]*)`)
	categoryLineRe = regexp.MustCompile(`(?:직무\s*카테고리|직무\s*분류|직무\s*유형)[^\n]*:\s*([^\n]*)`)
	skillSplitRe   = regexp.MustCompile(`[,•·]`)

	strengthRe    = regexp.MustCompile(`(?s)1\.\s*강점[^:\n]*:?\s*(.*?)\s*2\.`)
	weaknessRe    = regexp.MustCompile(`(?s)2\.\s*약점[^:\n]*:?\s*(.*?)\s*3\.`)
	improvementRe = regexp.MustCompile(`(?s)3\.\s*개선점[^:\n]*:?\s*(.*?)\s*4\.`)
)

// ExtractSkillsAndCategory pulls the skills list and job category out of an
// evaluation report. Only the first occurrence of each marker line counts.
// The skills line is split on comma, bullet, or middle dot, tokens trimmed.
func ExtractSkillsAndCategory(report string) ([]string, *string) {
	skills := []string{}
	if m := skillsLineRe.FindStringSubmatch(report); m != nil {
		for _, token := range skillSplitRe.Split(m[1], -1) {
			token = strings.TrimSpace(token)
			if token != "" {
				skills = append(skills, token)
			}
		}
	}

	var category *string
	if m := categoryLineRe.FindStringSubmatch(report); m != nil {
		trimmed := strings.TrimSpace(m[1])
		if trimmed != "" {
			category = &trimmed
		}
	}

	return skills, category
}

// ParseReportSections extracts the strength, weakness, and improvement
// bodies between the numbered markers (1. 강점 → 2., 2. 약점 → 3.,
// 3. 개선점 → 4.). A section whose marker or terminating marker is missing
// comes back nil.
func ParseReportSections(report string) (strength, weakness, improvement *string) {
	capture := func(re *regexp.Regexp) *string {
		m := re.FindStringSubmatch(report)
		if m == nil {
			return nil
		}
		body := strings.TrimSpace(m[1])
		return &body
	}

	return capture(strengthRe), capture(weaknessRe), capture(improvementRe)
}
