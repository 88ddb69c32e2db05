package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(files []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, files)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestBurstFiresOnce(t *testing.T) {
	dir := t.TempDir()
	dw, err := NewDirWatcher(100*time.Millisecond, zaptest.NewLogger(t), ".png")
	require.NoError(t, err)
	defer dw.Close()

	rec := &recorder{}
	require.NoError(t, dw.Watch([]string{dir}, rec.record))
	dw.Start()

	pin := filepath.Join(dir, "pin.png")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(pin, []byte{byte(i)}, 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) > 0 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(250 * time.Millisecond)

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.Len(t, calls[0], 1)
	assert.Contains(t, []string{pin, filepath.Join(resolved, "pin.png")}, calls[0][0])
}

func TestIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	dw, err := NewDirWatcher(50*time.Millisecond, zaptest.NewLogger(t), ".png")
	require.NoError(t, err)
	defer dw.Close()

	rec := &recorder{}
	require.NoError(t, dw.Watch([]string{dir}, rec.record))
	dw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestWatchMissingDirectory(t *testing.T) {
	dw, err := NewDirWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer dw.Close()

	err = dw.Watch([]string{filepath.Join(t.TempDir(), "missing")}, func([]string) {})
	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	dw, err := NewDirWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	dw.Start()
	require.NoError(t, dw.Close())
	assert.NoError(t, dw.Close())
}
