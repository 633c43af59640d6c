package engine

import (
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
)

// ImmutableExecution is the unit of work used when the input artifact comes
// from outside any local project (an external, content-addressed
// producer): its Identity folds in the artifact's own normalized path and
// content snapshot, so the workspace can be shared and persisted across
// builds.
type ImmutableExecution struct {
	abstractExecution
	fsaccess ports.FileSystemAccess
}

// NewImmutableExecution constructs the immutable-variant unit of work.
func NewImmutableExecution(
	transformer domain.Transformer,
	inputArtifact string,
	dependencies domain.ArtifactTransformDependencies,
	tracer ports.Tracer,
	fsaccess ports.FileSystemAccess,
) *ImmutableExecution {
	return &ImmutableExecution{
		abstractExecution: newAbstractExecution(transformer, inputArtifact, dependencies, tracer),
		fsaccess:          fsaccess,
	}
}

// VisitIdentityInputs extends the shared declaration with the input
// artifact's path and content. The snapshot is taken once, eagerly, here —
// capturing the raw content snapshot is cheaper than running it through the
// full fingerprinting machinery, and is good enough for identity purposes.
func (e *ImmutableExecution) VisitIdentityInputs(v ports.IdentityInputVisitor) {
	e.abstractExecution.VisitIdentityInputs(v)

	snapshot, snapshotErr := e.fsaccess.Snapshot(e.inputArtifact)

	v.InputProperty(domain.PropertyInputArtifactPath, func() (any, error) {
		if snapshotErr != nil {
			return nil, snapshotErr
		}
		path, err := e.fsaccess.NormalizePath(e.inputArtifact, e.transformer.InputArtifactNormalizer(), e.transformer.InputArtifactDirectorySensitivity())
		if err != nil {
			return nil, err
		}
		return domain.NewPathSnapshot(path), nil
	})
	v.InputProperty(domain.PropertyInputArtifactSnapshot, func() (any, error) {
		return snapshot, snapshotErr
	})
}

// Identify implements the immutable Identity: normalized path, content
// snapshot, secondary inputs, dependencies hash, in that exact order.
func (e *ImmutableExecution) Identify(inputs map[string]any, fileInputHashes map[string]uint64) domain.Identity {
	path, _ := inputs[domain.PropertyInputArtifactPath].(domain.Snapshot)
	snapshot, _ := inputs[domain.PropertyInputArtifactSnapshot].(domain.Snapshot)
	secondaryHash, _ := inputs[domain.PropertyInputPropertiesHash].(uint64)

	return domain.ImmutableIdentity{
		InputArtifactPath:     path,
		InputArtifactSnapshot: snapshot,
		SecondaryInputs:       domain.NewContentSnapshot(secondaryHash),
		DependenciesHash:      fileInputHashes[domain.PropertyInputArtifactDependencies],
	}
}
