// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/frob/internal/adapters/cache"
	_ "go.trai.ch/frob/internal/adapters/config"
	_ "go.trai.ch/frob/internal/adapters/linear"
	_ "go.trai.ch/frob/internal/adapters/logger"
	_ "go.trai.ch/frob/internal/adapters/metrics"
	_ "go.trai.ch/frob/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/frob/internal/app"
)
