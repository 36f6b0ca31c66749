package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hostcache/internal/adapters/watcher"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/hostcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func nextEvent(t *testing.T, events <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return ports.WatchEvent{}
	}
}

func TestWatcher_ReportsWritesAndSkipsCacheDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	root := t.TempDir()
	cacheDir := filepath.Join(root, domain.CacheDirName)
	require.NoError(t, os.MkdirAll(cacheDir, domain.DirPerm))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib"), domain.DirPerm))

	w, err := watcher.NewWatcher(log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "ignored.json"), []byte("{}"), 0o600))
	target := filepath.Join(root, "lib", "a.ts")
	require.NoError(t, os.WriteFile(target, []byte("export {};"), 0o600))

	ev := nextEvent(t, events)
	assert.Equal(t, target, ev.Path)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	w, err := watcher.NewWatcher(log, "dist")
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, t.TempDir()))
	cancel()

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not close after cancel")
	}
}
