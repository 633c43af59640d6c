package workspace

import (
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

// MemoryStore implements ports.WorkspaceProvider for the mutable variant: it
// still allocates real directories on disk (the transformer needs somewhere
// to write), but the uniqueID-to-directory mapping lives only in memory, so
// a producer project's workspace never outlives the build that created it.
type MemoryStore struct {
	root string

	mu    sync.Mutex
	index map[string]string
}

// NewMemoryStore creates a MemoryStore rooted at root.
func NewMemoryStore(root string) *MemoryStore {
	return &MemoryStore{root: filepath.Clean(root), index: make(map[string]string)}
}

// Workspace implements ports.WorkspaceProvider.
func (s *MemoryStore) Workspace(uniqueID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir, ok := s.index[uniqueID]; ok {
		return filepath.Join(s.root, dir), true, nil
	}

	path := filepath.Join(s.root, uniqueID)
	if err := os.MkdirAll(domain.OutputDir(path), 0o755); err != nil {
		return "", false, zerr.Wrap(err, "failed to create workspace directory")
	}
	s.index[uniqueID] = uniqueID
	return path, false, nil
}
