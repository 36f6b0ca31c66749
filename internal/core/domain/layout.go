package domain

import "path/filepath"

const (
	// CacheDirName is the name of the internal cache directory.
	CacheDirName = ".hostcache"

	// StoreDirName is the name of the manifest store directory.
	StoreDirName = "store"

	// GraphDBName is the file name of the graph database.
	GraphDBName = "graph.db"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "hostcache.yaml"

	// DefaultTSConfigName is the tsconfig file used when the config names none.
	DefaultTSConfigName = "tsconfig.json"

	// MetadataSuffix is the suffix of emitted metadata artifacts.
	MetadataSuffix = ".metadata.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the manifest store path relative to a project root.
func DefaultStorePath() string {
	return filepath.Join(CacheDirName, StoreDirName)
}

// DefaultGraphDBPath returns the graph database path relative to a project root.
func DefaultGraphDBPath() string {
	return filepath.Join(CacheDirName, GraphDBName)
}
