package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	input := "  첫 줄  \n\n\n둘째 줄\n   \n셋째 줄  "

	assert.Equal(t, "첫 줄\n둘째 줄\n셋째 줄", CleanText(input))
}

func TestExtractTextMissingFile(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText("/nonexistent/resume.pdf")
	assert.Error(t, err)
}
