package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "short", Truncate("  short  ", 10))
	assert.Equal(t, "가나다...", Truncate("가나다라마", 3))
}

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		log, err := New(json, true)
		assert.NoError(t, err)
		assert.NotNil(t, log)
	}
}
