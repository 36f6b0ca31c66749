// Package compiler runs compilation passes over entry points through the
// caching compiler host.
package compiler

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/hostcache/internal/adapters/cachehost"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of the driver's spans.
const TracerName = "go.trai.ch/hostcache/engine/compiler"

// Result summarizes one pass.
type Result struct {
	// EntryPoint is the normalized entry the pass started from.
	EntryPoint string
	// Sources lists loaded source files in visit order.
	Sources []string
	// Resources lists read resource files in visit order.
	Resources []string
	// Unresolved lists "<file>: <specifier>" pairs that did not resolve.
	Unresolved []string
	// Emitted lists written artifact paths.
	Emitted []string
	// Edges is the graph edge count after the pass.
	Edges int
}

// Driver walks the program reachable from an entry point.
type Driver struct {
	host     ports.CompilerHost
	resolver ports.ModuleResolver
	logger   ports.Logger
	tracer   trace.Tracer
}

// NewDriver creates a Driver. A nil tracer uses the global provider.
func NewDriver(host ports.CompilerHost, resolver ports.ModuleResolver, logger ports.Logger, tracer trace.Tracer) *Driver {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}
	return &Driver{
		host:     host,
		resolver: resolver,
		logger:   logger,
		tracer:   tracer,
	}
}

// Compile runs one pass for entry within session. Every file is visited at
// most once per pass; files already in the session's record store are served
// from it.
func (d *Driver) Compile(ctx context.Context, session *Session, entry string) (res *Result, err error) {
	entry = domain.NormalizePath(entry)

	ctx, span := d.tracer.Start(ctx, "pass "+entry, trace.WithAttributes(
		attribute.String("hostcache.entry", entry),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	p := &pass{
		ctx:     ctx,
		session: session,
		host: cachehost.New(cachehost.Options{
			Host:       d.host,
			Resolver:   d.resolver,
			Resolution: session.Resolution(),
			Compiler:   session.Options(),
			Graph:      session.Graph(),
			EntryPoint: session.EntryNode(entry),
			Files:      session.Files(),
			Template:   session.opts.Template,
			Stylesheet: session.opts.Stylesheet,
		}),
		logger:  d.logger,
		visited: make(map[string]struct{}),
		result:  &Result{EntryPoint: entry},
	}

	if err := p.run(entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCompilationFailed.Error()), "entry", entry)
	}
	p.result.Edges = session.Graph().EdgeCount()

	span.SetAttributes(
		attribute.Int("hostcache.sources", len(p.result.Sources)),
		attribute.Int("hostcache.resources", len(p.result.Resources)),
		attribute.Int("hostcache.unresolved", len(p.result.Unresolved)),
		attribute.Int("hostcache.edges", p.result.Edges),
	)
	d.logger.Info(fmt.Sprintf("compiled %s: %d sources, %d resources",
		relativeTo(session.Root(), entry), len(p.result.Sources), len(p.result.Resources)))

	return p.result, nil
}

type pass struct {
	ctx     context.Context
	session *Session
	host    *cachehost.Host
	logger  ports.Logger
	visited map[string]struct{}
	result  *Result
}

func (p *pass) run(entry string) error {
	queue := []string{entry}
	for len(queue) > 0 {
		if err := p.ctx.Err(); err != nil {
			return err
		}

		file := queue[0]
		queue = queue[1:]
		if _, seen := p.visited[file]; seen {
			continue
		}
		p.visited[file] = struct{}{}

		next, err := p.visit(file)
		if err != nil {
			return err
		}
		queue = append(queue, next...)
	}
	return nil
}

// visit loads one source file, reads its resources, emits its artifact and
// returns the local sources it imports.
func (p *pass) visit(file string) ([]string, error) {
	unit, err := p.host.GetSourceFile(file, p.session.Options().Target)
	if err != nil {
		return nil, err
	}
	p.result.Sources = append(p.result.Sources, unit.FileName)

	var next []string
	for i, resolved := range p.host.ResolveModuleNames(unit.Imports, unit.FileName) {
		switch {
		case resolved == nil:
			p.result.Unresolved = append(p.result.Unresolved, unit.FileName+": "+unit.Imports[i])
		case resolved.IsExternalLibraryImport || isNodeModule(resolved.ResolvedFileName):
		default:
			next = append(next, resolved.ResolvedFileName)
		}
	}

	for _, ref := range unit.Resources {
		resourcePath := p.host.ResourceNameToFileName(ref, unit.FileName)
		if _, seen := p.visited[resourcePath]; seen {
			continue
		}
		p.visited[resourcePath] = struct{}{}

		if _, err := p.host.ReadResource(resourcePath); err != nil {
			return nil, err
		}
		p.result.Resources = append(p.result.Resources, resourcePath)
	}

	if err := p.emit(unit); err != nil {
		return nil, err
	}
	return next, nil
}

// metadata is the body of an emitted .metadata.json artifact.
type metadata struct {
	File      string   `json:"file"`
	Target    string   `json:"target"`
	Digest    string   `json:"digest"`
	Imports   []string `json:"imports,omitzero"`
	Resources []string `json:"resources,omitzero"`
}

func (p *pass) emit(unit *domain.SourceUnit) error {
	outDir := p.session.Options().OutDir
	if outDir == "" || unit.IsDeclaration() {
		return nil
	}

	rel := relativeTo(p.session.Root(), unit.FileName)
	data, err := json.MarshalIndent(metadata{
		File:      rel,
		Target:    unit.Target.String(),
		Digest:    FormatDigest(unit.Digest),
		Imports:   unit.Imports,
		Resources: unit.Resources,
	}, "", "  ")
	if err != nil {
		return err
	}

	out := filepath.Join(outDir, filepath.FromSlash(artifactStem(rel))+domain.MetadataSuffix)
	onError := func(message string) { p.logger.Warn("emit " + rel + ": " + message) }
	if err := p.host.WriteFile(out, append(data, '\n'), false, onError, []*domain.SourceUnit{unit}); err != nil {
		return err
	}
	p.result.Emitted = append(p.result.Emitted, domain.NormalizePath(out))
	return nil
}

// FormatDigest renders a source digest the way manifests and artifacts store it.
func FormatDigest(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

func artifactStem(rel string) string {
	for _, ext := range []string{".tsx", ".ts"} {
		if strings.HasSuffix(rel, ext) {
			return strings.TrimSuffix(rel, ext)
		}
	}
	return rel
}

// relativeTo returns p relative to root with forward slashes. Paths outside
// root fall back to their base name.
func relativeTo(root, p string) string {
	if root == "" {
		return filepath.Base(p)
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(p)
	}
	return filepath.ToSlash(rel)
}

func isNodeModule(p string) bool {
	return strings.Contains(p, "/node_modules/")
}
