package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/aretw0/noteapp/pkg/adapters/fs"
	"github.com/aretw0/noteapp/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fs.DefaultFileName)
	store := fs.NewStore(fs.Config{Path: path})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return store.State().(fs.StoreState).WatcherActive
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, worker.StatusRunning, store.State().(fs.StoreState).WatcherStatus)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

	// Saves made through this store are not reported back.
	p := core.NewProject()
	p.Add(core.NewNote("A", core.CategoryMisc, ""))
	require.NoError(t, store.Save(ctx, p))

	select {
	case e := <-events:
		t.Fatalf("unexpected event for own save: %v", e)
	case <-time.After(4 * fs.DebounceInterval):
	}

	// Another process rewriting the file is.
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version": 2, "notes": []}`), 0644))

	select {
	case e := <-events:
		assert.Equal(t, path, e.Path)
		assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, e.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for store event")
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, store.State().(fs.StoreState).WatcherActive)
	require.Eventually(t, func() bool {
		return store.State().(fs.StoreState).WatcherStatus == worker.StatusFinished
	}, time.Second, 10*time.Millisecond)
}

func TestStore_WatchReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fs.DefaultFileName)
	store := fs.NewStore(fs.Config{Path: path})
	require.NoError(t, store.Save(context.Background(), core.NewProject()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	select {
	case e := <-events:
		assert.Equal(t, core.EventDelete, e.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delete event")
	}
}

func TestStore_WatchMissingDirectory(t *testing.T) {
	store := fs.NewStore(fs.Config{Path: filepath.Join(t.TempDir(), "nope", fs.DefaultFileName)})
	_, err := store.Watch(context.Background())
	assert.Error(t, err)
	assert.Empty(t, store.State().(fs.StoreState).WatcherStatus)
}
