package engine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/adapters/fs"
	"go.trai.ch/xform/internal/core/ports"
)

// NodeID is the unique identifier for the host execution engine Graft node.
const NodeID graft.ID = "adapter.execution_engine"

func init() {
	graft.Register(graft.Node[ports.ExecutionEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ExecutionEngine, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewDefaultEngine(hasher), nil
		},
	})
}
