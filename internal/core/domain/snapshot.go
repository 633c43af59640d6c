// Package domain contains the core value objects of the transform execution
// engine: identities, snapshots, and the transformer contract.
package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// SnapshotKind distinguishes the two shapes a Snapshot can take.
type SnapshotKind int

const (
	// ContentSnapshot carries the content hash of a file or directory tree.
	ContentSnapshot SnapshotKind = iota
	// PathSnapshot carries a normalized path string.
	PathSnapshot
)

// Snapshot is an opaque value produced by the file-system-access facade.
// It carries either a content hash or a normalized path, and knows how to
// fold itself into a running hash so Identity.UniqueID can double-dispatch
// into it without caring which shape it holds.
type Snapshot struct {
	kind SnapshotKind
	hash uint64
	path string
}

// NewContentSnapshot wraps a content hash as a Snapshot.
func NewContentSnapshot(hash uint64) Snapshot {
	return Snapshot{kind: ContentSnapshot, hash: hash}
}

// NewPathSnapshot wraps a normalized path string as a Snapshot.
func NewPathSnapshot(path string) Snapshot {
	return Snapshot{kind: PathSnapshot, path: path}
}

// AppendToHasher feeds the snapshot's value into h in a fixed, kind-tagged
// encoding so that a content snapshot and a path snapshot can never collide.
func (s Snapshot) AppendToHasher(h *xxhash.Digest) {
	_, _ = h.Write([]byte{byte(s.kind)})
	switch s.kind {
	case ContentSnapshot:
		_, _ = h.WriteString(fmt.Sprintf("%016x", s.hash))
	case PathSnapshot:
		_, _ = h.WriteString(s.path)
	}
}

// Equal reports whether two snapshots are structurally equal.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.kind == other.kind && s.hash == other.hash && s.path == other.path
}

// String renders the snapshot for debugging; not part of the hashed encoding.
func (s Snapshot) String() string {
	switch s.kind {
	case ContentSnapshot:
		return fmt.Sprintf("content:%016x", s.hash)
	case PathSnapshot:
		return "path:" + s.path
	default:
		return "snapshot:<unknown>"
	}
}
