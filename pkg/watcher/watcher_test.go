package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points: []\n"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(path, []byte("points: []\n# edited\n"), 0o644))

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}
}

func TestFileWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))

	select {
	case got := <-changed:
		t.Fatalf("unexpected callback for %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileWatcherMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "nope", "scene.yaml")}, func(string) {})
	assert.Error(t, err)
}

func TestFileWatcherRemoveAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.Watch([]string{path}, func(string) {}))
	require.NoError(t, fw.RemoveAll())
	assert.Empty(t, fw.callbacks)
	assert.Empty(t, fw.dirs)
}
