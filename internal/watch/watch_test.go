package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) handle(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths = append(r.paths, path)
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.paths...)
}

func start(t *testing.T, rec *recorder, root string) {
	t.Helper()

	w, err := New(rec.handle, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Add(root))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWatcherDebouncesWrites(t *testing.T) {
	root := t.TempDir()
	rec := &recorder{}
	start(t, rec, root)

	path := filepath.Join(root, "README.md")
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("draft\n"), 0o600))
	}

	require.Eventually(t, func() bool { return len(rec.seen()) > 0 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{path}, rec.seen())
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	rec := &recorder{}
	start(t, rec, root)

	sub := filepath.Join(root, "docs")
	require.NoError(t, os.Mkdir(sub, 0o755))

	path := filepath.Join(sub, "guide.md")

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("x\n"), 0o600)

		for _, p := range rec.seen() {
			if p == path {
				return true
			}
		}

		return false
	}, 2*time.Second, 50*time.Millisecond)
}

func TestAddSkipsIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules", "pkg"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))

	w, err := New(func(string) {})
	require.NoError(t, err)

	defer w.close()

	require.NoError(t, w.Add(root))
	assert.ElementsMatch(t, []string{root, filepath.Join(root, "docs")}, w.fsw.WatchList())
}

func TestIgnoredDir(t *testing.T) {
	assert.True(t, IgnoredDir(".git"))
	assert.True(t, IgnoredDir("node_modules"))
	assert.False(t, IgnoredDir("docs"))
	assert.False(t, IgnoredDir("."))
}
