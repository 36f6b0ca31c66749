package processor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hostcache/internal/adapters/logger"
	"go.trai.ch/hostcache/internal/core/ports"
)

// NodeID is the unique identifier for the processor factory Graft node.
const NodeID graft.ID = "adapter.processor"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
