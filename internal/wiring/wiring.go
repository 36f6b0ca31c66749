// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hostcache/internal/adapters/cas"
	_ "go.trai.ch/hostcache/internal/adapters/config"
	_ "go.trai.ch/hostcache/internal/adapters/fs"
	_ "go.trai.ch/hostcache/internal/adapters/graphdb"
	_ "go.trai.ch/hostcache/internal/adapters/logger"
	_ "go.trai.ch/hostcache/internal/adapters/processor"
	_ "go.trai.ch/hostcache/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/hostcache/internal/app"
	_ "go.trai.ch/hostcache/internal/engine/compiler"
)
