package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/frob/internal/adapters/cache"
	"go.trai.ch/frob/internal/adapters/config"
	"go.trai.ch/frob/internal/adapters/linear"
	"go.trai.ch/frob/internal/adapters/logger"
	"go.trai.ch/frob/internal/adapters/metrics"
	"go.trai.ch/frob/internal/adapters/watcher"
	"go.trai.ch/frob/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// Components bundles what the command line needs: the application and the
// logger used to report its errors.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			linear.NodeID,
			cache.NodeID,
			metrics.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			resultCache, err := graft.Dep[ports.ResultCache](ctx)
			if err != nil {
				return nil, err
			}
			recorder, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, log, renderer, resultCache, recorder, w),
				Logger: log,
			}, nil
		},
	})
}
