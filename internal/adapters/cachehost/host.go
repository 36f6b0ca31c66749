// Package cachehost implements a compiler host decorator that memoizes file
// access in a FileCache and records, per entry point, every file the compiler
// touched in the BuildGraph.
package cachehost

import (
	"path/filepath"

	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
)

var _ ports.ResourceHost = (*Host)(nil)

// Options configures a Host. Graph, EntryPoint, Host and Resolver are required.
type Options struct {
	// Host is the wrapped compiler host every miss is delegated to.
	Host ports.CompilerHost
	// Resolver is the module-resolution primitive.
	Resolver ports.ModuleResolver
	// Resolution is the caller-owned resolution cache handed to Resolver.
	Resolution *domain.ResolutionCache
	// Compiler holds the options passed to Resolver.
	Compiler domain.CompilerOptions
	// Graph is borrowed from the build session.
	Graph *domain.BuildGraph
	// EntryPoint is the node every read is attributed to.
	EntryPoint *domain.Node
	// Files is an optional shared store. A fresh one is created when nil.
	Files *domain.FileCache
	// Template processes template-language resources. Passthrough when nil.
	Template ports.ResourceProcessor
	// Stylesheet processes stylesheet resources. Passthrough when nil.
	Stylesheet ports.ResourceProcessor
}

// Host is a caching ports.ResourceHost for one entry point.
// Like the structures it borrows, it is not safe for concurrent use.
type Host struct {
	host       ports.CompilerHost
	resolver   ports.ModuleResolver
	resolution *domain.ResolutionCache
	compiler   domain.CompilerOptions
	graph      *domain.BuildGraph
	entryPoint *domain.Node
	files      *domain.FileCache
	template   ports.ResourceProcessor
	stylesheet ports.ResourceProcessor
}

// New creates a Host from opts.
func New(opts Options) *Host {
	files := opts.Files
	if files == nil {
		files = domain.NewFileCache()
	}
	template := opts.Template
	if template == nil {
		template = passthrough
	}
	stylesheet := opts.Stylesheet
	if stylesheet == nil {
		stylesheet = passthrough
	}

	return &Host{
		host:       opts.Host,
		resolver:   opts.Resolver,
		resolution: opts.Resolution,
		compiler:   opts.Compiler,
		graph:      opts.Graph,
		entryPoint: opts.EntryPoint,
		files:      files,
		template:   template,
		stylesheet: stylesheet,
	}
}

var passthrough = ports.ProcessorFunc(func(_, content string) (string, error) {
	return content, nil
})

// Files returns the file record store the host fills.
func (h *Host) Files() *domain.FileCache {
	return h.files
}

// EntryPoint returns the node reads are attributed to.
func (h *Host) EntryPoint() *domain.Node {
	return h.entryPoint
}

// addDependee records entry point -> fileName.
func (h *Host) addDependee(fileName string) {
	h.entryPoint.DependsOn(h.graph.NodeFor(fileName))
}

// FileExists reports whether fileName exists, asking the wrapped host once per path.
func (h *Host) FileExists(fileName string) bool {
	rec := h.files.GetOrCreate(fileName)
	if exists, ok := rec.Exists(); ok {
		return exists
	}
	return rec.SetExists(h.host.FileExists(fileName))
}

// GetSourceFile returns the cached unit for fileName, loading it on first use.
// The first successful load wins; later calls ignore target.
func (h *Host) GetSourceFile(fileName string, target domain.ScriptTarget) (*domain.SourceUnit, error) {
	h.addDependee(fileName)

	rec := h.files.GetOrCreate(fileName)
	if unit := rec.Source(); unit != nil {
		return unit, nil
	}

	unit, err := h.host.GetSourceFile(fileName, target)
	if err != nil {
		return nil, err
	}
	return rec.SetSource(unit), nil
}

// WriteFile records fileName as the artifact of each source unit when it is a
// declaration or metadata file, then always delegates the write.
func (h *Host) WriteFile(
	fileName string,
	data []byte,
	writeBOM bool,
	onError ports.WriteErrorFunc,
	sourceFiles []*domain.SourceUnit,
) error {
	if domain.IsArtifactFile(fileName) {
		for _, source := range sourceFiles {
			if source == nil {
				continue
			}
			h.files.GetOrCreate(source.FileName).SetDeclarationPath(fileName)
		}
	}

	return h.host.WriteFile(fileName, data, writeBOM, onError, sourceFiles)
}

// ReadFile returns the cached raw content of fileName, reading it on first use.
func (h *Host) ReadFile(fileName string) (string, error) {
	h.addDependee(fileName)

	rec := h.files.GetOrCreate(fileName)
	if content, ok := rec.Content(); ok {
		return content, nil
	}

	content, err := h.host.ReadFile(fileName)
	if err != nil {
		return "", err
	}
	return rec.SetContent(content), nil
}

// ModuleNameToFileName resolves moduleName from containingFile. Results are never cached here.
func (h *Host) ModuleNameToFileName(moduleName, containingFile string) (string, bool) {
	resolved := h.resolve(moduleName, containingFile)
	if resolved == nil {
		return "", false
	}
	return resolved.ResolvedFileName, true
}

// ResolveModuleNames resolves each name in order. Unresolved names yield nil.
func (h *Host) ResolveModuleNames(moduleNames []string, containingFile string) []*domain.ResolvedModule {
	resolved := make([]*domain.ResolvedModule, len(moduleNames))
	for i, name := range moduleNames {
		resolved[i] = h.resolve(name, containingFile)
	}
	return resolved
}

func (h *Host) resolve(moduleName, containingFile string) *domain.ResolvedModule {
	return h.resolver.ResolveModuleName(
		moduleName,
		domain.NormalizePath(containingFile),
		h.compiler,
		h.host,
		h.resolution,
	)
}

// ResourceNameToFileName resolves resourceName against the directory of
// containingFile and records containingFile -> resource. Existence is not checked.
func (h *Host) ResourceNameToFileName(resourceName, containingFile string) string {
	resourcePath := resolvePath(filepath.Dir(containingFile), resourceName)

	containing := h.graph.NodeFor(containingFile)
	containing.DependsOn(h.graph.NodeFor(resourcePath))

	return resourcePath
}

// ReadResource returns the transformed content of a resource, reading and
// transforming it on first use. Nothing is cached when the transform fails.
func (h *Host) ReadResource(fileName string) (string, error) {
	h.addDependee(fileName)

	rec := h.files.GetOrCreate(fileName)
	if content, ok := rec.Resource(); ok {
		return content, nil
	}

	raw, err := h.host.ReadFile(fileName)
	if err != nil {
		return "", err
	}

	content, err := TransformResource(fileName, raw, h.template, h.stylesheet)
	if err != nil {
		return "", err
	}

	rec.SetExists(true)
	return rec.SetResource(content), nil
}

// resolvePath mirrors path resolution: absolute references stand alone,
// relative ones are joined to dir and made absolute.
func resolvePath(dir, ref string) string {
	p := ref
	if !filepath.IsAbs(ref) && !isSlashAbs(ref) {
		p = filepath.Join(dir, ref)
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return domain.NormalizePath(p)
}

func isSlashAbs(p string) bool {
	return len(p) > 0 && p[0] == '/'
}
