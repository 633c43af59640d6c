package listener

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/core/ports"
)

// NodeID is the unique identifier for the listener bus Graft node.
const NodeID graft.ID = "adapter.listener_bus"

func init() {
	graft.Register(graft.Node[ports.TransformListener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TransformListener, error) {
			return New(), nil
		},
	})
}
