// Package fs provides the filesystem-backed compiler host together with the
// module resolver, the import scanner and helpers for walking and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/hostcache/internal/core/domain"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":              true,
	".jj":               true,
	"node_modules":      true,
	domain.CacheDirName: true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file under root, skipping VCS, dependency and cache
// directories as well as any file or directory whose base name matches one of
// the ignore patterns. Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if w.ignored(d, ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// SourceFiles yields the TypeScript sources under root, declaration files included.
func (w *Walker) SourceFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, ignores) {
			if !isSourceFile(path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// ArtifactFiles yields emitted declaration and metadata files under root.
func (w *Walker) ArtifactFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, nil) {
			if !domain.IsArtifactFile(path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

func (w *Walker) ignored(d fs.DirEntry, ignores []string) bool {
	name := d.Name()
	if d.IsDir() && skippedDirs[name] {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}

func isSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".ts", ".tsx":
		return true
	default:
		return false
	}
}
