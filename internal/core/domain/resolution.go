package domain

// ResolvedModule is the outcome of a successful module resolution.
type ResolvedModule struct {
	// ResolvedFileName is the absolute normalized path of the module.
	ResolvedFileName string
	// Extension is the matched file extension (".ts", ".tsx", ".d.ts").
	Extension string
	// IsExternalLibraryImport is set when the module lives under node_modules.
	IsExternalLibraryImport bool
}

// ResolutionCache memoizes module resolution per (directory, specifier).
// It is owned by the build session, never by the caching host.
type ResolutionCache struct {
	entries map[resolutionKey]*ResolvedModule
}

type resolutionKey struct {
	dir       string
	specifier string
}

// NewResolutionCache creates an empty ResolutionCache.
func NewResolutionCache() *ResolutionCache {
	return &ResolutionCache{entries: make(map[resolutionKey]*ResolvedModule)}
}

// Get returns the cached result. The boolean reports whether the pair was seen;
// a seen pair may still hold a nil (unresolved) result.
func (c *ResolutionCache) Get(dir, specifier string) (*ResolvedModule, bool) {
	m, ok := c.entries[resolutionKey{dir: dir, specifier: specifier}]
	return m, ok
}

// Set stores a result, including nil for unresolved specifiers.
func (c *ResolutionCache) Set(dir, specifier string, m *ResolvedModule) {
	c.entries[resolutionKey{dir: dir, specifier: specifier}] = m
}

// Clear drops every cached result.
func (c *ResolutionCache) Clear() {
	clear(c.entries)
}

// Len returns the number of cached pairs.
func (c *ResolutionCache) Len() int {
	return len(c.entries)
}
