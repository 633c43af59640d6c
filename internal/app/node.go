package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/xform/internal/engine"
)

// NodeID is the unique identifier for the App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			engine.FactoryNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[*config.Loader](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[*engine.InvocationFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, factory, log), nil
		},
	})
}
