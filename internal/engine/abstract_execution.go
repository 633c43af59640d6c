package engine

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
)

// fileInputDeclarer is the common subset of IdentityInputVisitor and
// RegularInputVisitor used to declare a file-collection property; both
// satisfy it structurally.
type fileInputDeclarer interface {
	InputFileProperty(name string, kind ports.InputPropertyKind, files func() ([]string, error))
}

var notCacheable = &ports.CachingDisabledReason{
	Category: "NOT_CACHEABLE",
	Message:  "Caching not enabled.",
}

// abstractExecution is the part of ports.UnitOfWork shared by the immutable
// and mutable variants: everything except Identify, which differs in what
// the input artifact contributes to identity.
type abstractExecution struct {
	transformer  domain.Transformer
	inputArtifact string
	dependencies domain.ArtifactTransformDependencies
	tracer       ports.Tracer
	startedAt    time.Time
}

func newAbstractExecution(transformer domain.Transformer, inputArtifact string, dependencies domain.ArtifactTransformDependencies, tracer ports.Tracer) abstractExecution {
	return abstractExecution{
		transformer:   transformer,
		inputArtifact: inputArtifact,
		dependencies:  dependencies,
		tracer:        tracer,
		startedAt:     time.Now(),
	}
}

// DisplayName implements ports.UnitOfWork.
func (e *abstractExecution) DisplayName() string {
	return e.transformer.DisplayName() + ": " + e.inputArtifact
}

// VisitIdentityInputs implements the shared half of ports.UnitOfWork's
// contract: the transformer's secondary inputs and its dependencies file
// collection. Variants that need more (the immutable variant also folds in
// the input artifact's own path and content) call this first, then add
// their own.
func (e *abstractExecution) VisitIdentityInputs(v ports.IdentityInputVisitor) {
	v.InputProperty(domain.PropertyInputPropertiesHash, func() (any, error) {
		return e.transformer.SecondaryInputHash(), nil
	})
	e.visitDependencies(v)
}

// VisitRegularInputs implements ports.UnitOfWork.
func (e *abstractExecution) VisitRegularInputs(v ports.RegularInputVisitor) {
	v.InputFileProperty(domain.PropertyInputArtifact, ports.NonIncremental, func() ([]string, error) {
		return []string{e.inputArtifact}, nil
	})
}

func (e *abstractExecution) visitDependencies(v fileInputDeclarer) {
	v.InputFileProperty(domain.PropertyInputArtifactDependencies, ports.NonIncremental, func() ([]string, error) {
		return e.dependencies.Paths(), nil
	})
}

// VisitOutputs implements ports.UnitOfWork.
func (e *abstractExecution) VisitOutputs(workspace string, v ports.OutputVisitor) {
	v.OutputProperty(domain.PropertyOutputDirectory, ports.TreeDirectory, domain.OutputDir(workspace))
	v.OutputProperty(domain.PropertyResultsFile, ports.TreeFile, domain.ResultsFile(workspace))
}

// Execute implements ports.UnitOfWork: it runs the transformer inside a
// span named after it and the input artifact, then records the produced
// files in the results file so a later restore doesn't need to re-invoke
// the transformer.
func (e *abstractExecution) Execute(ctx context.Context, workspace string, changes *domain.InputChanges) ([]string, error) {
	spanName := e.transformer.DisplayName() + " " + filepath.Base(e.inputArtifact)
	ctx, span := e.tracer.Start(ctx, spanName)
	defer span.End()

	outputDir := domain.OutputDir(workspace)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		span.RecordError(err)
		return nil, err
	}

	result, err := e.transformer.Transform(ctx, domain.FileSystemLocation{Path: e.inputArtifact}, outputDir, e.dependencies, changes)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := encodeResults(workspace, e.inputArtifact, result); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return result, nil
}

// LoadRestoredOutput implements ports.UnitOfWork.
func (e *abstractExecution) LoadRestoredOutput(workspace string) ([]string, error) {
	return decodeResults(workspace, e.inputArtifact)
}

// ShouldDisableCaching implements ports.UnitOfWork.
func (e *abstractExecution) ShouldDisableCaching() *ports.CachingDisabledReason {
	if e.transformer.Cacheable() {
		return nil
	}
	return notCacheable
}

// InputChangeTrackingStrategy implements ports.UnitOfWork.
func (e *abstractExecution) InputChangeTrackingStrategy() ports.InputChangeTrackingStrategy {
	if e.transformer.RequiresInputChanges() {
		return ports.TrackingIncrementalParameters
	}
	return ports.TrackingNone
}

// MarkExecutionTime implements ports.UnitOfWork.
func (e *abstractExecution) MarkExecutionTime() time.Duration {
	return time.Since(e.startedAt)
}
