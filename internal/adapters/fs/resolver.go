package fs

import (
	"path"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/hostcache/internal/core/domain"
	"go.trai.ch/hostcache/internal/core/ports"
)

var _ ports.ModuleResolver = (*Resolver)(nil)

const nodeModules = "node_modules"

var (
	fileSuffixes  = []string{".ts", ".tsx", ".d.ts"}
	indexSuffixes = []string{"/index.ts", "/index.tsx", "/index.d.ts"}
)

// Resolver implements ports.ModuleResolver with TypeScript's classic-plus-node
// lookup rules: relative specifiers, then paths mappings, then baseUrl, then
// typed packages under node_modules.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveModuleName resolves moduleName as imported from containingFile.
// Results, including misses, are memoized in cache keyed by the containing
// directory.
func (r *Resolver) ResolveModuleName(
	moduleName, containingFile string,
	opts domain.CompilerOptions,
	host ports.CompilerHost,
	cache *domain.ResolutionCache,
) *domain.ResolvedModule {
	dir := path.Dir(domain.NormalizePath(containingFile))
	if cache != nil {
		if m, ok := cache.Get(dir, moduleName); ok {
			return m
		}
	}

	m := r.resolve(moduleName, dir, opts, host)
	if cache != nil {
		cache.Set(dir, moduleName, m)
	}
	return m
}

func (r *Resolver) resolve(moduleName, dir string, opts domain.CompilerOptions, host ports.CompilerHost) *domain.ResolvedModule {
	if isRelative(moduleName) {
		return tryFile(path.Join(dir, moduleName), host)
	}
	if path.IsAbs(moduleName) {
		return tryFile(moduleName, host)
	}

	baseURL := domain.NormalizePath(opts.BaseURL)
	if baseURL != "" {
		for _, candidate := range matchPaths(moduleName, opts.Paths) {
			if m := tryFile(path.Join(baseURL, candidate), host); m != nil {
				return m
			}
		}
		if m := tryFile(path.Join(baseURL, moduleName), host); m != nil {
			return m
		}
	}

	return r.resolveNodeModule(moduleName, dir, host)
}

// resolveNodeModule walks up from dir looking for typings in node_modules.
func (r *Resolver) resolveNodeModule(moduleName, dir string, host ports.CompilerHost) *domain.ResolvedModule {
	for {
		pkgDir := path.Join(dir, nodeModules, moduleName)
		if m := tryPackage(pkgDir, host); m != nil {
			return m
		}
		if m := tryPackage(path.Join(dir, nodeModules, "@types", typesPackageName(moduleName)), host); m != nil {
			return m
		}

		parent := path.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func tryPackage(pkgDir string, host ports.CompilerHost) *domain.ResolvedModule {
	m := tryDeclaration(pkgDir, host)
	if m == nil {
		m = tryPackageTypes(pkgDir, host)
	}
	if m != nil {
		m.IsExternalLibraryImport = true
	}
	return m
}

// tryPackageTypes follows the "types" (or "typings") field of package.json.
func tryPackageTypes(pkgDir string, host ports.CompilerHost) *domain.ResolvedModule {
	manifest := pkgDir + "/package.json"
	if !host.FileExists(manifest) {
		return nil
	}
	data, err := host.ReadFile(manifest)
	if err != nil || !gjson.Valid(data) {
		return nil
	}
	result := gjson.GetMany(data, "types", "typings")
	for _, field := range result {
		if field.Type != gjson.String || field.Str == "" {
			continue
		}
		target := path.Join(pkgDir, field.Str)
		if host.FileExists(target) {
			return &domain.ResolvedModule{ResolvedFileName: target, Extension: extensionOf(target)}
		}
		if m := tryDeclaration(strings.TrimSuffix(target, ".d.ts"), host); m != nil {
			return m
		}
	}
	return nil
}

func tryDeclaration(base string, host ports.CompilerHost) *domain.ResolvedModule {
	for _, candidate := range []string{base + ".d.ts", base + "/index.d.ts"} {
		if host.FileExists(candidate) {
			return &domain.ResolvedModule{ResolvedFileName: candidate, Extension: ".d.ts"}
		}
	}
	return nil
}

// tryFile probes base as written, then with each source suffix, then as a
// directory with an index file. A ".js" specifier also probes its TypeScript
// counterpart.
func tryFile(base string, host ports.CompilerHost) *domain.ResolvedModule {
	base = domain.NormalizePath(base)

	if hasSourceExtension(base) && host.FileExists(base) {
		return &domain.ResolvedModule{ResolvedFileName: base, Extension: extensionOf(base)}
	}

	stem := base
	if ext := path.Ext(base); ext == ".js" || ext == ".jsx" {
		stem = strings.TrimSuffix(base, ext)
	}
	for _, suffix := range slices.Concat(fileSuffixes, indexSuffixes) {
		candidate := stem + suffix
		if host.FileExists(candidate) {
			return &domain.ResolvedModule{ResolvedFileName: candidate, Extension: extensionOf(candidate)}
		}
	}
	return nil
}

// matchPaths expands the tsconfig paths mapping for moduleName. An exact key
// wins over wildcard keys; among wildcard keys the longest prefix wins.
func matchPaths(moduleName string, paths map[string][]string) []string {
	if targets, ok := paths[moduleName]; ok {
		return targets
	}

	var (
		best     string
		bestLen  = -1
		captured string
	)
	for pattern := range paths {
		prefix, suffix, ok := strings.Cut(pattern, "*")
		if !ok || len(moduleName) < len(prefix)+len(suffix) {
			continue
		}
		if !strings.HasPrefix(moduleName, prefix) || !strings.HasSuffix(moduleName, suffix) {
			continue
		}
		if len(prefix) < bestLen || (len(prefix) == bestLen && pattern > best) {
			continue
		}
		best, bestLen = pattern, len(prefix)
		captured = moduleName[len(prefix) : len(moduleName)-len(suffix)]
	}
	if bestLen < 0 {
		return nil
	}

	targets := make([]string, 0, len(paths[best]))
	for _, target := range paths[best] {
		targets = append(targets, strings.Replace(target, "*", captured, 1))
	}
	return targets
}

func isRelative(moduleName string) bool {
	return moduleName == "." || moduleName == ".." ||
		strings.HasPrefix(moduleName, "./") || strings.HasPrefix(moduleName, "../")
}

func hasSourceExtension(p string) bool {
	return strings.HasSuffix(p, ".ts") || strings.HasSuffix(p, ".tsx")
}

func extensionOf(p string) string {
	if domain.IsDeclarationFile(p) {
		return ".d.ts"
	}
	return path.Ext(p)
}

// typesPackageName maps a scoped package to its DefinitelyTyped name:
// "@scope/name" becomes "scope__name".
func typesPackageName(moduleName string) string {
	if scope, name, ok := strings.Cut(strings.TrimPrefix(moduleName, "@"), "/"); ok && strings.HasPrefix(moduleName, "@") {
		return scope + "__" + name
	}
	return moduleName
}
