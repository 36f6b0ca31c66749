package domain

import (
	"path"
	"path/filepath"
	"strings"
	"unique"
)

// FileScheme is the URI scheme used for node identities.
const FileScheme = "file://"

// NodeURI identifies a node in the build graph.
// It wraps a unique.Handle[string] so identities compare in O(1) and repeated
// paths share one allocation.
type NodeURI struct {
	h unique.Handle[string]
}

// NewNodeURI interns an already canonical URI string.
func NewNodeURI(s string) NodeURI {
	return NodeURI{h: unique.Make(s)}
}

// FileURL builds the node identity for a file path.
func FileURL(fileName string) NodeURI {
	return NewNodeURI(FileScheme + NormalizePath(fileName))
}

// String returns the URI text.
func (u NodeURI) String() string {
	return u.h.Value()
}

// Path returns the file path encoded in the URI.
func (u NodeURI) Path() string {
	return strings.TrimPrefix(u.h.Value(), FileScheme)
}

// IsZero reports whether the URI was never set.
func (u NodeURI) IsZero() bool {
	return u == NodeURI{}
}

// MarshalText implements encoding.TextMarshaler.
func (u NodeURI) MarshalText() ([]byte, error) {
	return []byte(u.h.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *NodeURI) UnmarshalText(text []byte) error {
	u.h = unique.Make(string(text))
	return nil
}

// NormalizePath converts platform separators to forward slashes and cleans the result.
// Backslashes are treated as separators on every platform so that paths
// recorded on Windows hosts map to the same identity.
func NormalizePath(fileName string) string {
	if fileName == "" {
		return ""
	}
	p := filepath.ToSlash(fileName)
	p = strings.ReplaceAll(p, `\`, "/")
	return path.Clean(p)
}
