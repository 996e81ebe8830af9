package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByIDsEmptyInputIssuesNoQuery(t *testing.T) {
	// A nil gorm handle proves the guard clause returns before any query.
	repo := NewJobPostingRepository(nil)

	postings, err := repo.FindByIDs([]int64{})
	require.NoError(t, err)
	assert.NotNil(t, postings)
	assert.Empty(t, postings)

	postings, err = repo.FindByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, postings)
}
