package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hostcache/internal/adapters/fs"
	"go.trai.ch/hostcache/internal/adapters/processor"
	"go.trai.ch/hostcache/internal/adapters/watcher"
	"go.trai.ch/hostcache/internal/app"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/hostcache/internal/core/ports/mocks"
	"go.trai.ch/hostcache/internal/engine/compiler"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// messages collects logger output from a mock logger.
type messages struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (m *messages) info() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.infos...)
}

type fixture struct {
	root      string
	project   *domain.Project
	loader    *mocks.MockConfigLoader
	manifests *mocks.MockManifestStore
	graphs    *mocks.MockGraphStore
	watcher   *mocks.MockWatcher
	log       *mocks.MockLogger
	msgs      *messages
	app       *app.App
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return domain.NormalizePath(p)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	entry := writeFile(t, root, "src/index.ts", "import { a } from './a';\nexport const x = a;\n")
	writeFile(t, root, "src/a.ts", "@Component({ styleUrl: './a.css' })\nexport class A {}\nexport const a = 1;\n")
	writeFile(t, root, "src/a.css", "p { color: red; }")

	f := &fixture{
		root: domain.NormalizePath(root),
		project: &domain.Project{
			Root:        domain.NormalizePath(root),
			EntryPoints: []string{entry},
			Options:     domain.CompilerOptions{Target: domain.TargetES2020, OutDir: filepath.Join(root, "dist")},
		},
		loader:    mocks.NewMockConfigLoader(ctrl),
		manifests: mocks.NewMockManifestStore(ctrl),
		graphs:    mocks.NewMockGraphStore(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
		log:       mocks.NewMockLogger(ctrl),
		msgs:      &messages{},
	}

	f.log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		f.msgs.mu.Lock()
		f.msgs.infos = append(f.msgs.infos, msg)
		f.msgs.mu.Unlock()
	}).AnyTimes()
	f.log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		f.msgs.mu.Lock()
		f.msgs.warns = append(f.msgs.warns, msg)
		f.msgs.mu.Unlock()
	}).AnyTimes()

	f.app = f.newApp(f.log)
	return f
}

func (f *fixture) newApp(log ports.Logger) *app.App {
	driver := compiler.NewDriver(fs.NewHost(), fs.NewResolver(), log, nil)
	return app.New(
		f.loader,
		driver,
		f.manifests,
		f.graphs,
		processor.NewFactory(log),
		f.watcher,
		watcher.NewDigestCache(fs.NewHasher()),
		fs.NewWalker(),
		log,
	).WithWorkDir(f.root).WithClock(func() time.Time { return fixedNow })
}

// rootedLogger records the project root handed to the logger.
type rootedLogger struct {
	*mocks.MockLogger
	root string
}

func (l *rootedLogger) SetRoot(root string) {
	l.root = root
}

func (f *fixture) path(rel string) string {
	return f.root + "/" + rel
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.root).Return(f.project, nil)

	var saved domain.Manifest
	f.manifests.EXPECT().Get(f.root, f.path("src/index.ts")).Return(nil, nil)
	f.manifests.EXPECT().Put(f.root, gomock.Any()).DoAndReturn(func(_ string, m domain.Manifest) error {
		saved = m
		return nil
	})
	f.graphs.EXPECT().Save(gomock.Any(), f.root, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, g *domain.BuildGraph) error {
			n, ok := g.Get(domain.FileURL(f.path("src/index.ts")))
			require.True(t, ok)
			assert.True(t, n.HasDependency(domain.FileURL(f.path("src/a.css"))))
			return nil
		})

	require.NoError(t, f.app.Build(t.Context(), nil, app.BuildOptions{}))

	assert.Equal(t, f.path("src/index.ts"), saved.EntryPoint)
	assert.Equal(t, fixedNow, saved.Timestamp)
	require.Len(t, saved.Files, 3)
	assert.Equal(t, f.path("dist/src/a.metadata.json"), saved.Files[1].DeclarationPath)
	assert.FileExists(t, filepath.Join(f.root, "dist", "src", "index.metadata.json"))

	assert.Contains(t, f.msgs.info(), "compiled src/index.ts: 2 sources, 1 resources")
	assert.Contains(t, f.msgs.info(), "built 1 entry point in 0s")
}

func TestApp_Build_ExplicitEntries(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.root).Return(f.project, nil)
	f.manifests.EXPECT().Get(f.root, f.path("src/a.ts")).Return(nil, nil)
	f.manifests.EXPECT().Put(f.root, gomock.Any()).Return(nil)
	f.graphs.EXPECT().Save(gomock.Any(), f.root, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Build(t.Context(), []string{"src/a.ts", "./src/a.ts"}, app.BuildOptions{}))
	assert.Contains(t, f.msgs.info(), "compiled src/a.ts: 1 sources, 1 resources")
}

func TestApp_Build_NoSave(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.root).Return(f.project, nil)

	require.NoError(t, f.app.Build(t.Context(), nil, app.BuildOptions{NoSave: true}))
}

func TestApp_Build_ChangeSummary(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.root).Return(f.project, nil)
	f.manifests.EXPECT().Get(f.root, f.path("src/index.ts")).Return(&domain.Manifest{
		Files: []domain.ManifestEntry{{Path: f.path("src/index.ts"), Digest: "0000000000000000"}},
	}, nil)
	f.manifests.EXPECT().Put(f.root, gomock.Any()).Return(nil)
	f.graphs.EXPECT().Save(gomock.Any(), f.root, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Build(t.Context(), nil, app.BuildOptions{}))
	assert.Contains(t, f.msgs.info(), "src/index.ts: 3 changed since last build")
}

func TestApp_Build_Errors(t *testing.T) {
	t.Run("config load failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(f.root).Return(nil, domain.ErrConfigNotFound)

		err := f.app.Build(t.Context(), nil, app.BuildOptions{})
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to load configuration")
	})

	t.Run("no entry points", func(t *testing.T) {
		f := newFixture(t)
		f.project.EntryPoints = nil
		f.loader.EXPECT().Load(f.root).Return(f.project, nil)

		err := f.app.Build(t.Context(), nil, app.BuildOptions{})
		require.ErrorIs(t, err, domain.ErrNoEntryPoints)
	})

	t.Run("graph save failure", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(f.root).Return(f.project, nil)
		f.manifests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.manifests.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
		f.graphs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		err := f.app.Build(t.Context(), nil, app.BuildOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("missing entry", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(f.root).Return(f.project, nil)

		err := f.app.Build(t.Context(), []string{"src/nope.ts"}, app.BuildOptions{})
		require.Error(t, err)
		assert.ErrorContains(t, err, "compilation pass failed")
	})
}

func TestChangedFiles(t *testing.T) {
	prev := &domain.Manifest{Files: []domain.ManifestEntry{
		{Path: "/a.ts", Digest: "1"},
		{Path: "/b.ts", Digest: "2"},
		{Path: "/gone.ts", Digest: "3"},
	}}
	next := &domain.Manifest{Files: []domain.ManifestEntry{
		{Path: "/a.ts", Digest: "1"},
		{Path: "/b.ts", Digest: "9"},
		{Path: "/new.ts", Digest: "4"},
	}}

	assert.Equal(t, []string{"/b.ts", "/gone.ts", "/new.ts"}, app.ChangedFiles(prev, next))
	assert.Empty(t, app.ChangedFiles(next, next))
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.root).Return(f.project, nil).Times(2)

	writeFile(t, f.root, ".hostcache/graph.db", "x")
	artifact := writeFile(t, f.root, "dist/src/a.metadata.json", "{}")
	kept := writeFile(t, f.root, "dist/readme.txt", "keep")

	require.NoError(t, f.app.Clean(t.Context(), app.CleanOptions{}))
	assert.NoDirExists(t, filepath.Join(f.root, domain.CacheDirName))
	assert.FileExists(t, artifact)

	require.NoError(t, f.app.Clean(t.Context(), app.CleanOptions{Artifacts: true}))
	assert.NoFileExists(t, artifact)
	assert.FileExists(t, kept)
	assert.Contains(t, f.msgs.info(), "removed 1 artifact")
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.root).Return(f.project, nil)

	events := make(chan ports.WatchEvent)
	f.watcher.EXPECT().Start(gomock.Any(), f.root).Return(nil)
	f.watcher.EXPECT().Stop().Return(nil)
	f.watcher.EXPECT().Events().Return(func(yield func(ports.WatchEvent) bool) {
		for ev := range events {
			if !yield(ev) {
				return
			}
		}
	})

	var puts []domain.Manifest
	f.manifests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.manifests.EXPECT().Put(f.root, gomock.Any()).DoAndReturn(func(_ string, m domain.Manifest) error {
		puts = append(puts, m)
		return nil
	}).Times(2)

	saves := make(chan struct{}, 2)
	f.graphs.EXPECT().Save(gomock.Any(), f.root, gomock.Any()).DoAndReturn(
		func(context.Context, string, *domain.BuildGraph) error {
			saves <- struct{}{}
			return nil
		}).Times(2)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- f.app.Watch(ctx, app.WatchOptions{Debounce: 10 * time.Millisecond})
	}()

	waitFor(t, saves)

	// Unchanged content and artifacts are filtered out.
	events <- ports.WatchEvent{Path: f.path("src/a.ts"), Operation: ports.OpWrite}
	events <- ports.WatchEvent{Path: f.path("dist/src/a.metadata.json"), Operation: ports.OpWrite}

	writeFile(t, f.root, "src/a.css", "p { color: blue; }")
	events <- ports.WatchEvent{Path: f.path("src/a.css"), Operation: ports.OpWrite}

	waitFor(t, saves)
	close(events)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	require.Len(t, puts, 2)
	assert.Contains(t, f.msgs.info(), "changed: src/a.css")
	for _, msg := range f.msgs.info() {
		assert.False(t, strings.HasPrefix(msg, "changed: src/a.ts"), "unchanged content must not trigger a rebuild")
	}
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out")
	}
}

func TestApp_Build_SetsLoggerRoot(t *testing.T) {
	f := newFixture(t)
	log := &rootedLogger{MockLogger: f.log}
	a := f.newApp(log)

	f.loader.EXPECT().Load(f.root).Return(f.project, nil)
	f.manifests.EXPECT().Get(f.root, gomock.Any()).Return(nil, nil)
	f.manifests.EXPECT().Put(f.root, gomock.Any()).Return(nil)
	f.graphs.EXPECT().Save(gomock.Any(), f.root, gomock.Any()).Return(nil)

	require.NoError(t, a.Build(t.Context(), nil, app.BuildOptions{}))
	assert.Equal(t, f.root, log.root)
}

func TestApp_Build_Concurrent(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.root).Return(f.project, nil).Times(2)
	f.manifests.EXPECT().Get(f.root, gomock.Any()).Return(nil, nil).Times(2)
	f.manifests.EXPECT().Put(f.root, gomock.Any()).Return(nil).Times(2)

	var inFlight, peak atomic.Int32
	f.graphs.EXPECT().Save(gomock.Any(), f.root, gomock.Any()).DoAndReturn(
		func(context.Context, string, *domain.BuildGraph) error {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			if n > peak.Load() {
				peak.Store(n)
			}
			time.Sleep(10 * time.Millisecond)
			return nil
		}).Times(2)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Go(func() {
			errs[i] = f.app.Build(t.Context(), nil, app.BuildOptions{})
		})
	}
	wg.Wait()

	require.NoError(t, errors.Join(errs...))
	assert.Equal(t, int32(1), peak.Load(), "store writes of concurrent builds must not interleave")
}
