package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/hostcache/internal/adapters/watcher" //nolint:depguard // Debouncer is wired in app layer
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/engine/compiler"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Debounce is the quiet period before a batch of changes is rebuilt.
	Debounce time.Duration
}

// Watch builds every configured entry point, then rebuilds the affected ones
// whenever their files change. It returns when ctx is canceled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	project, err := a.loadProject()
	if err != nil {
		return err
	}
	targets, err := a.resolveEntries(project, nil)
	if err != nil {
		return err
	}

	session := a.newSession(project)
	if err := a.build(ctx, project, session, targets, BuildOptions{}); err != nil {
		// Keep watching so the next save can fix the build.
		a.logger.Error(err)
	}

	var files []string
	for p := range a.walker.WalkFiles(project.Root, project.Ignore) {
		files = append(files, p)
	}
	a.changes.Seed(files)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, project.Root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	a.logger.Info(fmt.Sprintf("watching %s for changes", project.Root))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		for ev := range a.watcher.Events() {
			if a.relevant(project, ev.Path) {
				debouncer.Add(ev.Path)
			}
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case paths := <-batches:
				a.rebuild(ctx, project, session, paths)
			}
		}
	})

	return g.Wait()
}

// relevant reports whether a change at p can affect a build.
func (a *App) relevant(project *domain.Project, p string) bool {
	if domain.IsArtifactFile(p) {
		return false
	}
	p = domain.NormalizePath(p)
	for _, dir := range []string{
		filepath.Join(project.Root, domain.CacheDirName),
		project.Options.OutDir,
	} {
		if dir == "" {
			continue
		}
		prefix := domain.NormalizePath(dir) + "/"
		if strings.HasPrefix(p, prefix) {
			return false
		}
	}
	for _, segment := range strings.Split(relPath(project.Root, p), "/") {
		for _, pattern := range project.Ignore {
			if ok, _ := filepath.Match(pattern, segment); ok {
				return false
			}
		}
	}
	return true
}

// rebuild invalidates changed paths and recompiles the entry points that
// depend on them. Failures are logged; the watch loop keeps running.
func (a *App) rebuild(ctx context.Context, project *domain.Project, session *compiler.Session, paths []string) {
	changed := a.changes.Changed(paths)
	if len(changed) == 0 {
		return
	}

	labels := make([]string, len(changed))
	for i, p := range changed {
		labels[i] = relPath(project.Root, domain.NormalizePath(p))
	}
	a.logger.Info("changed: " + strings.Join(labels, ", "))

	affected := session.Invalidate(changed)
	if hasNewSource(session, changed) {
		// A new file may satisfy an import that failed to resolve before.
		affected = append(affected, a.unresolvedEntries(project, session)...)
		slices.Sort(affected)
		affected = slices.Compact(affected)
	}

	if len(affected) == 0 {
		a.logger.Info("no entry points affected")
		return
	}

	if err := a.build(ctx, project, session, affected, BuildOptions{}); err != nil {
		a.logger.Error(err)
	}
}

func hasNewSource(session *compiler.Session, changed []string) bool {
	for _, p := range changed {
		if !isSourcePath(p) {
			continue
		}
		if _, ok := session.Graph().Get(domain.FileURL(p)); !ok {
			return true
		}
	}
	return false
}

// unresolvedEntries returns session entry points whose last saved manifest
// lists unresolved imports.
func (a *App) unresolvedEntries(project *domain.Project, session *compiler.Session) []string {
	var out []string
	for _, entry := range session.EntryPoints() {
		m, err := a.manifests.Get(project.Root, entry)
		if err != nil || m == nil {
			continue
		}
		if len(m.Unresolved) > 0 {
			out = append(out, entry)
		}
	}
	return out
}
