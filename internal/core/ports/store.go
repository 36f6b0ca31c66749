package ports

import (
	"context"

	"go.trai.ch/hostcache/internal/core/domain"
)

// ManifestStore persists one manifest per entry point.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the manifest for an entry point.
	// Returns nil, nil if not found.
	Get(root, entryPoint string) (*domain.Manifest, error)

	// Put stores the manifest.
	Put(root string, manifest domain.Manifest) error
}

// GraphStore persists build graph snapshots.
type GraphStore interface {
	// Save replaces the stored snapshot for root with graph.
	Save(ctx context.Context, root string, graph *domain.BuildGraph) error

	// Load rebuilds the stored snapshot for root. An empty graph is returned
	// when nothing was saved yet.
	Load(ctx context.Context, root string) (*domain.BuildGraph, error)
}
