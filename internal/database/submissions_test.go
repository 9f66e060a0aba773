package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSubmissionsNewestFirst(t *testing.T) {
	db, err := Initialize(":memory:")
	require.NoError(t, err)

	base := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		require.NoError(t, RecordSubmission(db, &SubmissionLog{
			CaseNumber:  int64(1000000000 + i),
			Success:     i%2 == 0,
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	first, err := ListSubmissions(db, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), first.Total)
	require.Len(t, first.Items, 10)
	assert.Equal(t, int64(1000000014), first.Items[0].CaseNumber)

	second, err := ListSubmissions(db, 2, 10)
	require.NoError(t, err)
	require.Len(t, second.Items, 5)
	assert.Equal(t, int64(1000000000), second.Items[4].CaseNumber)
}

func TestListSubmissionsClampsPaging(t *testing.T) {
	db, err := Initialize(":memory:")
	require.NoError(t, err)

	page, err := ListSubmissions(db, 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
}
