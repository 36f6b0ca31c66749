package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hostcache/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HostNodeID is the unique identifier for the filesystem compiler host Graft node.
	HostNodeID graft.ID = "adapter.fs.host"
	// ResolverNodeID is the unique identifier for the module resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.CompilerHost]{
		ID:        HostNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompilerHost, error) {
			return NewHost(), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})
}
