package ports

import "go.trai.ch/xform/internal/core/domain"

// FileSystemAccess is the file-system snapshotter/fingerprinter the core
// consumes but never implements: it supplies content hashes and normalized
// paths on request.
//
//go:generate go run go.uber.org/mock/mockgen -source=fsaccess.go -destination=mocks/mock_fsaccess.go -package=mocks
type FileSystemAccess interface {
	// Snapshot reads the current content of path (file or directory) and
	// returns an opaque content Snapshot for it.
	Snapshot(path string) (domain.Snapshot, error)

	// NormalizePath applies normalizer/sensitivity to path and returns the
	// resulting normalized path string.
	NormalizePath(path string, normalizer domain.Normalizer, sensitivity domain.DirectorySensitivity) (string, error)
}
