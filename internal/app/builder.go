package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/xform/internal/core/ports"
)

// Components contains all the initialized application components, exposed
// so the CLI layer can report errors through the logger once it exists.
type Components struct {
	App    *App
	Logger ports.Logger
}

// ComponentsNodeID is the unique identifier for the App components Graft
// node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
