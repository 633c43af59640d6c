package engine

import (
	"context"

	"github.com/grindlemire/graft"
	adapterengine "go.trai.ch/xform/internal/adapters/engine"
	"go.trai.ch/xform/internal/adapters/fs"
	"go.trai.ch/xform/internal/adapters/listener"
	"go.trai.ch/xform/internal/adapters/telemetry/progrock"
	"go.trai.ch/xform/internal/adapters/workspace"
	"go.trai.ch/xform/internal/core/ports"
)

// FactoryNodeID is the unique identifier for the InvocationFactory Graft
// node.
const FactoryNodeID graft.ID = "engine.invocation_factory"

func init() {
	graft.Register(graft.Node[*InvocationFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			adapterengine.NodeID,
			fs.FileSystemNodeID,
			listener.NodeID,
			progrock.NodeID,
			workspace.ImmutableNodeID,
			workspace.ProjectFactoryNodeID,
		},
		Run: func(ctx context.Context) (*InvocationFactory, error) {
			executionEngine, err := graft.Dep[ports.ExecutionEngine](ctx)
			if err != nil {
				return nil, err
			}
			fsaccess, err := graft.Dep[ports.FileSystemAccess](ctx)
			if err != nil {
				return nil, err
			}
			transformListener, err := graft.Dep[ports.TransformListener](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			immutableWorkspaces, err := graft.Dep[ports.WorkspaceProvider](ctx)
			if err != nil {
				return nil, err
			}
			projectWorkspaces, err := graft.Dep[func(string) ports.WorkspaceProvider](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvocationFactory(executionEngine, fsaccess, transformListener, tracer, immutableWorkspaces, projectWorkspaces), nil
		},
	})
}
