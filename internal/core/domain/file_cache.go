package domain

import (
	"slices"
)

// FileRecord holds the cached slots for one file identity.
// Every slot is filled at most once: setters keep the first value and ignore
// later ones.
type FileRecord struct {
	path            string
	exists          *bool
	source          *SourceUnit
	content         *string
	resource        *string
	declarationPath string
}

// Path returns the normalized path the record is keyed by.
func (r *FileRecord) Path() string {
	return r.path
}

// Exists returns the cached existence flag and whether it was set.
func (r *FileRecord) Exists() (exists, ok bool) {
	if r.exists == nil {
		return false, false
	}
	return *r.exists, true
}

// SetExists stores the existence flag if unset and returns the stored value.
func (r *FileRecord) SetExists(exists bool) bool {
	if r.exists == nil {
		r.exists = &exists
	}
	return *r.exists
}

// Source returns the cached source unit, or nil.
func (r *FileRecord) Source() *SourceUnit {
	return r.source
}

// SetSource stores the source unit if unset and returns the stored unit.
// A nil unit leaves the slot unset.
func (r *FileRecord) SetSource(unit *SourceUnit) *SourceUnit {
	if r.source == nil {
		r.source = unit
	}
	return r.source
}

// Content returns the cached raw content and whether it was set.
func (r *FileRecord) Content() (string, bool) {
	if r.content == nil {
		return "", false
	}
	return *r.content, true
}

// SetContent stores the raw content if unset and returns the stored value.
func (r *FileRecord) SetContent(content string) string {
	if r.content == nil {
		r.content = &content
	}
	return *r.content
}

// Resource returns the cached transformed resource content and whether it was set.
func (r *FileRecord) Resource() (string, bool) {
	if r.resource == nil {
		return "", false
	}
	return *r.resource, true
}

// SetResource stores the transformed resource content if unset and returns the stored value.
func (r *FileRecord) SetResource(content string) string {
	if r.resource == nil {
		r.resource = &content
	}
	return *r.resource
}

// DeclarationPath returns the recorded artifact path and whether it was set.
func (r *FileRecord) DeclarationPath() (string, bool) {
	return r.declarationPath, r.declarationPath != ""
}

// SetDeclarationPath records the artifact path if unset and returns the stored value.
// The path is normalized before it is stored.
func (r *FileRecord) SetDeclarationPath(p string) string {
	if r.declarationPath == "" {
		r.declarationPath = NormalizePath(p)
	}
	return r.declarationPath
}

// FileCache is the per-session file record store keyed by normalized path.
// It is not safe for concurrent use.
type FileCache struct {
	records map[string]*FileRecord
}

// NewFileCache creates an empty FileCache.
func NewFileCache() *FileCache {
	return &FileCache{records: make(map[string]*FileRecord)}
}

// GetOrCreate returns the record for fileName, creating an empty one on first use.
func (c *FileCache) GetOrCreate(fileName string) *FileRecord {
	key := NormalizePath(fileName)
	if rec, ok := c.records[key]; ok {
		return rec
	}
	rec := &FileRecord{path: key}
	c.records[key] = rec
	return rec
}

// Lookup returns the record for fileName without creating one.
func (c *FileCache) Lookup(fileName string) (*FileRecord, bool) {
	rec, ok := c.records[NormalizePath(fileName)]
	return rec, ok
}

// Forget drops the record for fileName. It reports whether a record existed.
// Pruning is driven by the invalidation policy, never by the host itself.
func (c *FileCache) Forget(fileName string) bool {
	key := NormalizePath(fileName)
	if _, ok := c.records[key]; !ok {
		return false
	}
	delete(c.records, key)
	return true
}

// Len returns the number of records.
func (c *FileCache) Len() int {
	return len(c.records)
}

// Paths returns the record keys in sorted order.
func (c *FileCache) Paths() []string {
	paths := make([]string, 0, len(c.records))
	for p := range c.records {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
