package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hostcache/internal/adapters/fs"
	"go.trai.ch/hostcache/internal/adapters/logger"
	"go.trai.ch/hostcache/internal/core/ports"
)

// NodeID is the unique identifier for the compilation driver Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HostNodeID, fs.ResolverNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Driver, error) {
			host, err := graft.Dep[ports.CompilerHost](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ModuleResolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDriver(host, resolver, log, nil), nil
		},
	})
}
