package engine

import (
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
)

// MutableExecution is the unit of work used when a local project produces
// the input artifact and may rewrite it mid-build: its Identity keys off
// the artifact's absolute path rather than its content, and the workspace
// is scoped to that project's build rather than shared globally.
type MutableExecution struct {
	abstractExecution
}

// NewMutableExecution constructs the mutable-variant unit of work.
func NewMutableExecution(
	transformer domain.Transformer,
	inputArtifact string,
	dependencies domain.ArtifactTransformDependencies,
	tracer ports.Tracer,
) *MutableExecution {
	return &MutableExecution{
		abstractExecution: newAbstractExecution(transformer, inputArtifact, dependencies, tracer),
	}
}

// Identify implements the mutable Identity: absolute path, secondary
// inputs, dependencies hash, in that exact order.
func (e *MutableExecution) Identify(inputs map[string]any, fileInputHashes map[string]uint64) domain.Identity {
	secondaryHash, _ := inputs[domain.PropertyInputPropertiesHash].(uint64)

	return domain.MutableIdentity{
		InputArtifactAbsolutePath: e.inputArtifact,
		SecondaryInputs:           domain.NewContentSnapshot(secondaryHash),
		DependenciesHash:          fileInputHashes[domain.PropertyInputArtifactDependencies],
	}
}
