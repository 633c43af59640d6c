package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/core/ports"
)

const (
	WalkerNodeID       graft.ID = "adapter.fs.walker"
	HasherNodeID       graft.ID = "adapter.fs.hasher"
	FileSystemNodeID   graft.ID = "adapter.fs.fsaccess"
)

func init() {
	// Walker Node (concrete implementation needed by Hasher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	// Hasher Node
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	// FileSystemAccess Node
	graft.Register(graft.Node[ports.FileSystemAccess]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FileSystemAccess, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileSystemAccess(NewHasher(walker)), nil
		},
	})
}
