// Package fs provides file system adapters: walking, content hashing, and
// path normalization.
package fs

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes deterministic, non-cryptographic content digests with
// xxhash — fast enough to hash on every invocation, and collision-resistant
// at build-cache scale.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// HashFile implements ports.Hasher.
func (h *Hasher) HashFile(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

// HashTree implements ports.Hasher: it folds the per-file content hash of
// every file the walker yields under root (.git, .jj and ignored directories
// are skipped) into a single digest, in sorted
// relative-path order so the result doesn't depend on directory-walk order.
func (h *Hasher) HashTree(root string) (uint64, error) {
	info, err := os.Stat(root)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", root)
	}
	if !info.IsDir() {
		return h.HashFile(root)
	}

	paths := make([]string, 0)
	for path := range h.walker.WalkFiles(root, nil) {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	hasher := xxhash.New()
	for _, path := range paths {
		_, _ = hasher.Write([]byte(path))
		_, _ = hasher.Write([]byte{0})

		fileHash, err := h.HashFile(path)
		if err != nil {
			return 0, err
		}
		_, _ = fmt.Fprintf(hasher, "%016x", fileHash)
	}
	return hasher.Sum64(), nil
}
