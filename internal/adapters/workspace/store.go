// Package workspace implements the content-addressed workspace cache: given
// an Identity.UniqueID, it hands back the single directory the engine must
// use, persisting the uniqueID-to-directory mapping so immutable workspaces
// survive across process restarts.
package workspace

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.WorkspaceProvider using a flat JSON index file
// alongside a directory of per-identity workspace subdirectories.
type Store struct {
	root      string
	indexPath string

	mu    sync.Mutex
	index map[string]string // uniqueID -> workspace subdirectory name
}

// NewStore creates a Store rooted at root, loading any existing index.
func NewStore(root string) (*Store, error) {
	s := &Store{
		root:      filepath.Clean(root),
		indexPath: filepath.Join(filepath.Clean(root), "index.json"),
		index:     make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read workspace index")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.index); err != nil {
		return zerr.Wrap(err, "failed to unmarshal workspace index")
	}
	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal workspace index")
	}
	if err := os.MkdirAll(s.root, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create workspace root")
	}
	if err := os.WriteFile(s.indexPath, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write workspace index")
	}
	return nil
}

// Workspace implements ports.WorkspaceProvider.
func (s *Store) Workspace(uniqueID string) (string, bool, error) {
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
	if err := s.save(); err != nil {
		return "", false, err
	}
	return path, false, nil
}
