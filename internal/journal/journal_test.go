package journal

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJournalAppendOrder(t *testing.T) {
	t.Parallel()

	j := New(discardLogger())
	j.Append("first attempt", LevelInfo)
	j.Append("retrying", LevelWarning)
	j.Append("done", LevelSuccess)

	entries := j.Entries()
	require.Len(t, entries, 3)

	// Chronological internally
	assert.Equal(t, "first attempt", entries[0].Message)
	assert.Equal(t, "done", entries[2].Message)

	// Newest-first for display
	recent := j.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "done", recent[0].Message)
	assert.Equal(t, "retrying", recent[1].Message)
}

func TestJournalRecentBounds(t *testing.T) {
	t.Parallel()

	j := New(discardLogger())
	j.Append("only", LevelInfo)

	assert.Len(t, j.Recent(0), 1)
	assert.Len(t, j.Recent(10), 1)
}

func TestJournalConcurrentAppend(t *testing.T) {
	t.Parallel()

	j := New(discardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			j.Append(fmt.Sprintf("entry %d", n), LevelInfo)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, j.Len())
}

func TestJournalEntriesCopyIsolated(t *testing.T) {
	t.Parallel()

	j := New(discardLogger())
	j.Append("original", LevelInfo)

	entries := j.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "original", j.Entries()[0].Message)
}
