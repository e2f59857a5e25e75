package ledger_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raffleworks/raffle-coordinator/internal/ledger"
)

func newTestLedger(t *testing.T) *ledger.FileLedger {
	t.Helper()
	l, err := ledger.NewFileLedger(filepath.Join(t.TempDir(), "data", "completed.txt"))
	require.NoError(t, err)
	return l
}

func TestFileLedger_AppendAndContains(t *testing.T) {
	l := newTestLedger(t)

	url := "https://www.reddit.com/r/raffles/comments/abc123/giveaway"

	ok, err := l.Contains(url)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Append(url))

	ok, err = l.Contains(url)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Contains("https://www.reddit.com/r/raffles/comments/other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileLedger_AppendIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "completed.txt")
	l, err := ledger.NewFileLedger(path)
	require.NoError(t, err)

	url := "https://www.reddit.com/r/raffles/comments/abc123"
	require.NoError(t, l.Append(url))
	require.NoError(t, l.Append(url))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, url+"\n", string(data))
}

func TestFileLedger_Wipe(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.Append("https://www.reddit.com/r/raffles/comments/a"))
	require.NoError(t, l.Append("https://www.reddit.com/r/raffles/comments/b"))

	removed, err := l.Wipe()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	ok, err := l.Contains("https://www.reddit.com/r/raffles/comments/a")
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err = l.Wipe()
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestFileLedger_ConcurrentAppends(t *testing.T) {
	l := newTestLedger(t)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Append("https://www.reddit.com/r/raffles/comments/same"))
		}()
	}
	wg.Wait()

	removed, err := l.Wipe()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}
