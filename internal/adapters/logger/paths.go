package logger

import (
	"path/filepath"
	"strings"
)

// pathKeys are the attribute and error metadata keys whose values are file
// paths. Adapters attach them as absolute normalized paths.
var pathKeys = map[string]struct{}{
	"path":        {},
	"entry":       {},
	"entry_point": {},
	"file":        {},
}

// displayPath returns value relative to root when key names a path inside root.
// Values outside root, relative values and non-path keys are returned as is.
func displayPath(root, key, value string) string {
	if root == "" {
		return value
	}
	if _, ok := pathKeys[key]; !ok {
		return value
	}
	if !filepath.IsAbs(filepath.FromSlash(value)) {
		return value
	}

	rel, err := filepath.Rel(filepath.FromSlash(root), filepath.FromSlash(value))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return value
	}
	return filepath.ToSlash(rel)
}
