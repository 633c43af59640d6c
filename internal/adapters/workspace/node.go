package workspace

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/core/ports"
)

// ImmutableNodeID is the unique identifier for the persistent,
// cross-restart workspace cache Graft node.
const ImmutableNodeID graft.ID = "adapter.workspace.immutable"

// ProjectFactoryNodeID is the unique identifier for the per-project,
// in-memory workspace cache factory Graft node.
const ProjectFactoryNodeID graft.ID = "adapter.workspace.project_factory"

func init() {
	graft.Register(graft.Node[ports.WorkspaceProvider]{
		ID:        ImmutableNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkspaceProvider, error) {
			return NewStore(filepath.Join(".xform", "cache"))
		},
	})

	graft.Register(graft.Node[func(string) ports.WorkspaceProvider]{
		ID:        ProjectFactoryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (func(string) ports.WorkspaceProvider, error) {
			return newProjectWorkspaceFactory(), nil
		},
	})
}

// newProjectWorkspaceFactory returns a function that hands back a
// MemoryStore scoped to a producer project path, reusing the same store
// across calls for the same path within one process.
func newProjectWorkspaceFactory() func(string) ports.WorkspaceProvider {
	var mu sync.Mutex
	stores := make(map[string]*MemoryStore)

	return func(projectPath string) ports.WorkspaceProvider {
		mu.Lock()
		defer mu.Unlock()

		if store, ok := stores[projectPath]; ok {
			return store
		}
		store := NewMemoryStore(filepath.Join(projectPath, ".xform-workspaces"))
		stores[projectPath] = store
		return store
	}
}
