package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
)

var _ ports.FileSystemAccess = (*FileSystemAccess)(nil)

// FileSystemAccess implements ports.FileSystemAccess: it snapshots a file
// or directory tree's content via Hasher, and normalizes paths the way a
// transformer's declared Normalizer/DirectorySensitivity ask for.
type FileSystemAccess struct {
	hasher *Hasher
}

// NewFileSystemAccess creates a new FileSystemAccess.
func NewFileSystemAccess(hasher *Hasher) *FileSystemAccess {
	return &FileSystemAccess{hasher: hasher}
}

// Snapshot implements ports.FileSystemAccess.
func (a *FileSystemAccess) Snapshot(path string) (domain.Snapshot, error) {
	hash, err := a.hasher.HashTree(path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.NewContentSnapshot(hash), nil
}

// NormalizePath implements ports.FileSystemAccess. A directory under
// IgnoreDirectories sensitivity contributes nothing to the normalized path,
// mirroring how a directory's own name is irrelevant when only its
// content is meant to matter.
func (a *FileSystemAccess) NormalizePath(path string, normalizer domain.Normalizer, sensitivity domain.DirectorySensitivity) (string, error) {
	if sensitivity == domain.IgnoreDirectories {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return "", nil
		}
	}

	switch normalizer {
	case domain.NormalizeAbsolute:
		return filepath.Abs(path)
	case domain.NormalizeNameOnly:
		return filepath.Base(path), nil
	case domain.NormalizeRelative:
		cwd, err := os.Getwd()
		if err != nil {
			return path, nil
		}
		rel, err := filepath.Rel(cwd, path)
		if err != nil {
			return path, nil
		}
		return rel, nil
	default:
		return path, nil
	}
}
