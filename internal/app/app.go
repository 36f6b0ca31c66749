// Package app implements the application layer for hostcache.
package app

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/hostcache/internal/engine/compiler"
	"go.trai.ch/zerr"
)

// ProcessorFactory builds resource processors from configured commands.
type ProcessorFactory interface {
	New(argv []string, dir string) ports.ResourceProcessor
}

// ChangeFilter drops change notifications whose file content is unchanged.
type ChangeFilter interface {
	Seed(paths []string)
	Changed(paths []string) []string
}

// FileWalker enumerates project files.
type FileWalker interface {
	WalkFiles(root string, ignores []string) iter.Seq[string]
	ArtifactFiles(root string) iter.Seq[string]
}

// jsonSwitcher is implemented by loggers that support a JSON output mode.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// rootSetter is implemented by loggers that show paths relative to the project.
type rootSetter interface {
	SetRoot(root string)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	driver       *compiler.Driver
	manifests    ports.ManifestStore
	graphs       ports.GraphStore
	processors   ProcessorFactory
	watcher      ports.Watcher
	changes      ChangeFilter
	walker       FileWalker
	logger       ports.Logger

	workDir string
	now     func() time.Time
	mu      sync.Mutex
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	driver *compiler.Driver,
	manifests ports.ManifestStore,
	graphs ports.GraphStore,
	processors ProcessorFactory,
	watcher ports.Watcher,
	changes ChangeFilter,
	walker FileWalker,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		driver:       driver,
		manifests:    manifests,
		graphs:       graphs,
		processors:   processors,
		watcher:      watcher,
		changes:      changes,
		walker:       walker,
		logger:       log,
		workDir:      ".",
		now:          time.Now,
	}
}

// WithWorkDir sets the directory configuration discovery starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithClock replaces the clock used for manifest timestamps.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// NoSave skips writing manifests and the graph snapshot.
	NoSave bool
}

// Build runs one compilation pass per entry point. With no entries the
// configured entry points are built.
func (a *App) Build(ctx context.Context, entries []string, opts BuildOptions) error {
	project, err := a.loadProject()
	if err != nil {
		return err
	}

	targets, err := a.resolveEntries(project, entries)
	if err != nil {
		return err
	}

	session := a.newSession(project)
	return a.build(ctx, project, session, targets, opts)
}

func (a *App) loadProject() (*domain.Project, error) {
	project, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if l, ok := a.logger.(rootSetter); ok {
		l.SetRoot(project.Root)
	}
	if l, ok := a.logger.(jsonSwitcher); ok && project.LogJSON {
		l.SetJSON(true)
	}
	return project, nil
}

func (a *App) resolveEntries(project *domain.Project, entries []string) ([]string, error) {
	if len(entries) == 0 {
		if len(project.EntryPoints) == 0 {
			return nil, domain.ErrNoEntryPoints
		}
		return project.EntryPoints, nil
	}

	targets := make([]string, 0, len(entries))
	for _, e := range entries {
		p := e
		if !filepath.IsAbs(p) {
			abs, err := filepath.Abs(filepath.Join(a.workDir, p))
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrEntryPointNotFound.Error()), "entry", e)
			}
			p = abs
		}
		targets = append(targets, domain.NormalizePath(p))
	}
	slices.Sort(targets)
	return slices.Compact(targets), nil
}

func (a *App) newSession(project *domain.Project) *compiler.Session {
	return compiler.NewSession(compiler.SessionOptions{
		Root:       project.Root,
		Compiler:   project.Options,
		Template:   a.processors.New(project.TemplateCmd, project.Root),
		Stylesheet: a.processors.New(project.StylesheetCmd, project.Root),
	})
}

// build compiles targets in order and persists the results. a.mu keeps
// concurrent Build calls on one App from interleaving their store writes.
func (a *App) build(
	ctx context.Context,
	project *domain.Project,
	session *compiler.Session,
	targets []string,
	opts BuildOptions,
) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := a.now()
	for _, entry := range targets {
		res, err := a.driver.Compile(ctx, session, entry)
		if err != nil {
			return err
		}

		for _, u := range res.Unresolved {
			a.logger.Warn("unresolved import " + relPath(project.Root, u))
		}

		if opts.NoSave {
			continue
		}
		if err := a.saveManifest(project, session, res); err != nil {
			return err
		}
	}

	if !opts.NoSave {
		if err := a.graphs.Save(ctx, project.Root, session.Graph()); err != nil {
			return err
		}
	}

	a.logger.Info(fmt.Sprintf("built %d %s in %s",
		len(targets), plural(len(targets), "entry point", "entry points"), a.now().Sub(start).Round(time.Millisecond)))
	return nil
}

func (a *App) saveManifest(project *domain.Project, session *compiler.Session, res *compiler.Result) error {
	manifest := session.Manifest(res, a.now())

	prev, err := a.manifests.Get(project.Root, res.EntryPoint)
	if err != nil {
		// A corrupt manifest only loses the change summary.
		a.logger.Warn("ignoring unreadable manifest for " + relPath(project.Root, res.EntryPoint))
		prev = nil
	}
	if prev != nil {
		if changed := ChangedFiles(prev, &manifest); len(changed) > 0 {
			a.logger.Info(fmt.Sprintf("%s: %d changed since last build",
				relPath(project.Root, res.EntryPoint), len(changed)))
		}
	}

	return a.manifests.Put(project.Root, manifest)
}

// ChangedFiles returns the sorted paths whose digest differs between prev and
// next, including files only present in one of them.
func ChangedFiles(prev, next *domain.Manifest) []string {
	before := make(map[string]string, len(prev.Files))
	for _, f := range prev.Files {
		before[f.Path] = f.Digest
	}

	var changed []string
	for _, f := range next.Files {
		digest, ok := before[f.Path]
		delete(before, f.Path)
		if !ok || digest != f.Digest {
			changed = append(changed, f.Path)
		}
	}
	for p := range before {
		changed = append(changed, p)
	}
	slices.Sort(changed)
	return changed
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Artifacts also removes emitted artifacts from the output directory.
	Artifacts bool
}

// Clean removes the cache directory and, when asked, emitted artifacts.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	project, err := a.loadProject()
	if err != nil {
		return err
	}

	var errs error
	cacheDir := filepath.Join(project.Root, domain.CacheDirName)
	a.logger.Info("removing " + domain.CacheDirName + "...")
	if err := os.RemoveAll(cacheDir); err != nil {
		errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrFailedToCleanCache.Error()), "path", cacheDir))
	}

	if opts.Artifacts && project.Options.OutDir != "" {
		removed := 0
		for p := range a.walker.ArtifactFiles(project.Options.OutDir) {
			if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrFailedToCleanCache.Error()), "path", p))
				continue
			}
			removed++
		}
		a.logger.Info(fmt.Sprintf("removed %d %s", removed, plural(removed, "artifact", "artifacts")))
	}

	return errs
}

func relPath(root, p string) string {
	if root == "" {
		return p
	}
	prefix := domain.NormalizePath(root) + "/"
	return strings.TrimPrefix(p, prefix)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
