package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Identity is the value determining cache equivalence between transform
// invocations. Two Identity values with equal UniqueID are eligible to share
// a workspace; Equal performs the same comparison structurally, without
// hashing, for use in in-memory caches.
type Identity interface {
	// UniqueID is a deterministic hex digest over the identity's fields, fed
	// into the hasher in a fixed field order.
	UniqueID() string
	// Equal reports structural equality against another Identity of the same
	// concrete type. Identities of different concrete types are never equal.
	Equal(other Identity) bool
}

// ImmutableIdentity is the Identity shape used when the input artifact comes
// from an external, content-addressed producer (no local project rewrites
// it). Fields are fed into the hasher in this exact order: normalized path,
// content snapshot, secondary inputs, dependencies hash.
type ImmutableIdentity struct {
	InputArtifactPath     Snapshot
	InputArtifactSnapshot Snapshot
	SecondaryInputs       Snapshot
	DependenciesHash      uint64
}

// UniqueID implements Identity.
func (id ImmutableIdentity) UniqueID() string {
	h := xxhash.New()
	id.InputArtifactPath.AppendToHasher(h)
	id.InputArtifactSnapshot.AppendToHasher(h)
	id.SecondaryInputs.AppendToHasher(h)
	putHash(h, id.DependenciesHash)
	return fmt.Sprintf("%016x", h.Sum64())
}

// Equal implements Identity.
func (id ImmutableIdentity) Equal(other Identity) bool {
	o, ok := other.(ImmutableIdentity)
	if !ok {
		return false
	}
	return id.InputArtifactPath.Equal(o.InputArtifactPath) &&
		id.InputArtifactSnapshot.Equal(o.InputArtifactSnapshot) &&
		id.SecondaryInputs.Equal(o.SecondaryInputs) &&
		id.DependenciesHash == o.DependenciesHash
}

// MutableIdentity is the Identity shape used when a local project produces
// the input artifact and may rewrite it during the build. Fields are fed
// into the hasher in this exact order: UTF-8 bytes of the absolute path,
// secondary inputs, dependencies hash.
type MutableIdentity struct {
	InputArtifactAbsolutePath string
	SecondaryInputs           Snapshot
	DependenciesHash          uint64
}

// UniqueID implements Identity.
func (id MutableIdentity) UniqueID() string {
	h := xxhash.New()
	_, _ = h.WriteString(id.InputArtifactAbsolutePath)
	id.SecondaryInputs.AppendToHasher(h)
	putHash(h, id.DependenciesHash)
	return fmt.Sprintf("%016x", h.Sum64())
}

// Equal implements Identity.
func (id MutableIdentity) Equal(other Identity) bool {
	o, ok := other.(MutableIdentity)
	if !ok {
		return false
	}
	return id.InputArtifactAbsolutePath == o.InputArtifactAbsolutePath &&
		id.SecondaryInputs.Equal(o.SecondaryInputs) &&
		id.DependenciesHash == o.DependenciesHash
}

// putHash folds a pre-computed 64-bit hash into the running digest, mirroring
// the original's Hasher.putHash(HashCode) step.
func putHash(h *xxhash.Digest, hash uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], hash)
	_, _ = h.Write(buf[:])
}
