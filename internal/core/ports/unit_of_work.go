package ports

import (
	"context"
	"time"

	"go.trai.ch/xform/internal/core/domain"
)

// InputPropertyKind mirrors the original's InputFingerprinter.InputPropertyType,
// trimmed to the one kind this core ever declares for identity/regular file
// inputs.
type InputPropertyKind int

// NonIncremental is the kind for identity file inputs: they participate in
// the fingerprint but are never tracked incrementally.
const NonIncremental InputPropertyKind = 0

// TreeKind describes the on-disk shape of a declared output.
type TreeKind int

const (
	// TreeDirectory marks an output property as a directory.
	TreeDirectory TreeKind = iota
	// TreeFile marks an output property as a single file.
	TreeFile
)

// IdentityInputVisitor is the callback surface a unit of work uses inside
// VisitIdentityInputs to declare the inputs that participate in Identity.
type IdentityInputVisitor interface {
	// InputProperty declares a scalar identity input. value is invoked lazily,
	// only if and when the engine actually fingerprints this unit of work.
	InputProperty(name string, value func() (any, error))
	// InputFileProperty declares a file-collection identity input.
	InputFileProperty(name string, kind InputPropertyKind, files func() ([]string, error))
}

// RegularInputVisitor is the callback surface used inside VisitRegularInputs
// to declare non-identity inputs.
type RegularInputVisitor interface {
	InputFileProperty(name string, kind InputPropertyKind, files func() ([]string, error))
}

// OutputVisitor is the callback surface used inside VisitOutputs to declare
// a unit of work's output locations.
type OutputVisitor interface {
	OutputProperty(name string, kind TreeKind, path string)
}

// CachingDisabledReason explains why a unit of work's result must not be
// cached across builds.
type CachingDisabledReason struct {
	Category string
	Message  string
}

// InputChangeTrackingStrategy selects whether the engine should track
// incremental input changes for a unit of work.
type InputChangeTrackingStrategy int

const (
	// TrackingNone means no incremental change tracking.
	TrackingNone InputChangeTrackingStrategy = iota
	// TrackingIncrementalParameters means the engine should compute and pass
	// InputChanges to Execute.
	TrackingIncrementalParameters
)

// UnitOfWork is the contract the engine drives: input declaration, output
// declaration, execution, and restoration from a cached workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=unit_of_work.go -destination=mocks/mock_unit_of_work.go -package=mocks
type UnitOfWork interface {
	// DisplayName is used in build-operation span names and error messages.
	DisplayName() string

	// VisitIdentityInputs declares the inputs that participate in Identity.
	VisitIdentityInputs(v IdentityInputVisitor)
	// VisitRegularInputs declares non-identity inputs.
	VisitRegularInputs(v RegularInputVisitor)
	// VisitOutputs declares this unit of work's outputs for the given
	// workspace.
	VisitOutputs(workspace string, v OutputVisitor)

	// Identify assembles this unit of work's Identity from the fingerprinted
	// scalar inputs and file-input content hashes the engine collected via
	// VisitIdentityInputs.
	Identify(inputs map[string]any, fileInputHashes map[string]uint64) domain.Identity

	// Execute runs the unit of work inside the given workspace and returns
	// the output files it produced.
	Execute(ctx context.Context, workspace string, changes *domain.InputChanges) ([]string, error)

	// LoadRestoredOutput decodes a previously-written result list from a
	// cached workspace.
	LoadRestoredOutput(workspace string) ([]string, error)

	// ShouldDisableCaching returns a non-nil reason iff this unit of work's
	// result must not be cached across builds.
	ShouldDisableCaching() *CachingDisabledReason

	// InputChangeTrackingStrategy reports whether this unit of work wants
	// incremental change tracking.
	InputChangeTrackingStrategy() InputChangeTrackingStrategy

	// MarkExecutionTime returns wall-clock elapsed time since this unit of
	// work was constructed.
	MarkExecutionTime() time.Duration
}
