package compiler

import (
	"slices"

	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// Root is the project root. Emitted artifacts mirror paths relative to it.
	Root string
	// Compiler holds the options every pass uses.
	Compiler domain.CompilerOptions
	// Template processes template resources. Passthrough when nil.
	Template ports.ResourceProcessor
	// Stylesheet processes stylesheet resources. Passthrough when nil.
	Stylesheet ports.ResourceProcessor
}

// Session owns the structures that outlive a single pass: the shared file
// record store, the build graph, the resolution cache and one graph node per
// entry point. It is not safe for concurrent use.
type Session struct {
	opts       SessionOptions
	files      *domain.FileCache
	graph      *domain.BuildGraph
	resolution *domain.ResolutionCache
	entries    map[string]*domain.Node
}

// NewSession creates an empty Session.
func NewSession(opts SessionOptions) *Session {
	return &Session{
		opts:       opts,
		files:      domain.NewFileCache(),
		graph:      domain.NewBuildGraph(),
		resolution: domain.NewResolutionCache(),
		entries:    make(map[string]*domain.Node),
	}
}

// Root returns the project root.
func (s *Session) Root() string { return s.opts.Root }

// Options returns the compiler options.
func (s *Session) Options() domain.CompilerOptions { return s.opts.Compiler }

// Files returns the shared file record store.
func (s *Session) Files() *domain.FileCache { return s.files }

// Graph returns the build graph.
func (s *Session) Graph() *domain.BuildGraph { return s.graph }

// Resolution returns the session-owned resolution cache.
func (s *Session) Resolution() *domain.ResolutionCache { return s.resolution }

// EntryNode returns the graph node for entry, creating it on first use.
func (s *Session) EntryNode(entry string) *domain.Node {
	key := domain.NormalizePath(entry)
	if n, ok := s.entries[key]; ok {
		return n
	}
	n := s.graph.NodeFor(key)
	s.entries[key] = n
	return n
}

// EntryPoints returns the known entry points in sorted order.
func (s *Session) EntryPoints() []string {
	out := make([]string, 0, len(s.entries))
	for p := range s.entries {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Invalidate forgets the records of changed paths and returns the entry
// points whose next pass must re-read them, sorted.
//
// Resolution results are dropped wholesale: a created or removed file can
// change what any specifier resolves to.
func (s *Session) Invalidate(changed []string) []string {
	if len(changed) == 0 {
		return nil
	}
	s.resolution.Clear()

	affected := make(map[string]struct{})
	for _, p := range changed {
		key := domain.NormalizePath(p)
		s.files.Forget(key)

		if _, ok := s.entries[key]; ok {
			affected[key] = struct{}{}
		}
		for _, dep := range s.graph.Dependents(domain.FileURL(key)) {
			if _, ok := s.entries[dep.Path()]; ok {
				affected[dep.Path()] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(affected))
	for p := range affected {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
