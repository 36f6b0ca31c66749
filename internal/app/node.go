package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hostcache/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/hostcache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hostcache/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/hostcache/internal/adapters/graphdb"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hostcache/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/hostcache/internal/adapters/processor" //nolint:depguard // Wired in app layer
	"go.trai.ch/hostcache/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/hostcache/internal/core/ports"
	"go.trai.ch/hostcache/internal/engine/compiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compiler.NodeID,
			cas.NodeID,
			graphdb.NodeID,
			processor.NodeID,
			watcher.WatcherNodeID,
			watcher.DigestCacheNodeID,
			fs.WalkerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	driver, err := graft.Dep[*compiler.Driver](ctx)
	if err != nil {
		return nil, err
	}
	manifests, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	graphs, err := graft.Dep[ports.GraphStore](ctx)
	if err != nil {
		return nil, err
	}
	processors, err := graft.Dep[*processor.Factory](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	digests, err := graft.Dep[*watcher.DigestCache](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, driver, manifests, graphs, processors, w, digests, walker, log), nil
}
