package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/ui/output"
	"go.trai.ch/hostcache/internal/ui/style"
	"go.trai.ch/zerr"
)

// Graph output formats.
const (
	FormatText = "text"
	FormatDot  = "dot"
)

// GraphOptions configuration for the Graph method.
type GraphOptions struct {
	// Format is FormatText (default) or FormatDot.
	Format string
}

// Graph renders the last saved build graph to w.
func (a *App) Graph(ctx context.Context, w io.Writer, opts GraphOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatDot {
		return zerr.With(domain.ErrUnknownGraphFormat, "format", format)
	}

	project, err := a.loadProject()
	if err != nil {
		return err
	}

	graph, err := a.graphs.Load(ctx, project.Root)
	if err != nil {
		return err
	}
	if graph.Len() == 0 {
		a.logger.Warn("no build graph recorded yet, run 'hostcache build' first")
		return nil
	}

	r := &graphRenderer{
		root:    project.Root,
		entries: make(map[string]bool, len(project.EntryPoints)),
	}
	for _, e := range project.EntryPoints {
		r.entries[domain.NormalizePath(e)] = true
	}

	if format == FormatDot {
		_, err = io.WriteString(w, r.dot(graph))
		return err
	}

	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)
	_, err = io.WriteString(w, r.text(graph))
	return err
}

type graphRenderer struct {
	root    string
	entries map[string]bool
}

func (r *graphRenderer) label(uri domain.NodeURI) string {
	return relPath(r.root, uri.Path())
}

func (r *graphRenderer) styleFor(uri domain.NodeURI) lipgloss.Style {
	switch {
	case r.entries[uri.Path()]:
		return style.Entry
	case isSourcePath(uri.Path()):
		return style.Source
	default:
		return style.Resource
	}
}

// text lists every node with outgoing edges followed by its dependencies in
// insertion order. Self edges are omitted.
func (r *graphRenderer) text(graph *domain.BuildGraph) string {
	var b strings.Builder
	edges := 0
	for n := range graph.Nodes() {
		deps := dependenciesOf(n)
		if len(deps) == 0 {
			continue
		}
		edges += len(deps)
		icon := style.Circle
		if r.entries[n.URI().Path()] {
			icon = style.Dot
		}
		fmt.Fprintf(&b, "%s %s\n", icon, r.styleFor(n.URI()).Render(r.label(n.URI())))
		for _, dep := range deps {
			fmt.Fprintf(&b, "  %s %s\n", style.Arrow, r.styleFor(dep).Render(r.label(dep)))
		}
	}
	fmt.Fprintf(&b, "\n%d %s, %d %s\n",
		graph.Len(), plural(graph.Len(), "file", "files"),
		edges, plural(edges, "edge", "edges"))
	return b.String()
}

// dot renders graph in Graphviz format.
func (r *graphRenderer) dot(graph *domain.BuildGraph) string {
	var b strings.Builder
	b.WriteString("digraph hostcache {\n  rankdir=LR;\n")
	for n := range graph.Nodes() {
		attrs := "shape=box"
		switch {
		case r.entries[n.URI().Path()]:
			attrs = "shape=box, style=bold"
		case !isSourcePath(n.URI().Path()):
			attrs = "shape=note"
		}
		fmt.Fprintf(&b, "  %q [%s];\n", r.label(n.URI()), attrs)
	}
	for n := range graph.Nodes() {
		for _, dep := range dependenciesOf(n) {
			fmt.Fprintf(&b, "  %q -> %q;\n", r.label(n.URI()), r.label(dep))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func dependenciesOf(n *domain.Node) []domain.NodeURI {
	var deps []domain.NodeURI
	for _, dep := range n.Dependencies() {
		if dep.URI() != n.URI() {
			deps = append(deps, dep.URI())
		}
	}
	return deps
}

func isSourcePath(p string) bool {
	return strings.HasSuffix(p, ".ts") || strings.HasSuffix(p, ".tsx")
}
