package journal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olxsync/internal/journal"
	"olxsync/internal/logger"
)

func openJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j, err := journal.Open("sqlite://file:journal_test?mode=memory&cache=shared", logger.New("error"))
	require.NoError(t, err)
	return j
}

func TestJournal(t *testing.T) {
	j := openJournal(t)

	runID, err := j.StartRun()
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	require.NoError(t, j.RecordItem(runID, "NB-1", "inserted", "5501", ""))
	require.NoError(t, j.RecordItem(runID, "NB-2", "failed", "", "API request failed: 500"))
	require.NoError(t, j.FinishRun(runID, 1, 0, 0, 1))

	run, err := j.Run(runID)
	require.NoError(t, err)
	assert.Equal(t, 1, run.Inserted)
	assert.Equal(t, 1, run.Failed)
	require.NotNil(t, run.FinishedAt)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))

	items, err := j.Items(runID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "NB-1", items[0].SKU)
	assert.Equal(t, "inserted", items[0].Outcome)
	assert.Equal(t, "5501", items[0].ListingID)
	assert.Equal(t, "failed", items[1].Outcome)
	assert.Equal(t, "API request failed: 500", items[1].Error)
}
