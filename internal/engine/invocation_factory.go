package engine

import (
	"context"
	"path/filepath"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/zerr"
)

// InvocationFactory is the entry point a build tool uses to request a
// transform: it picks the immutable or mutable execution variant based on
// whether the subject's initial component comes from a local project, and
// wraps whatever the execution engine hands back into an Invocation.
type InvocationFactory struct {
	executionEngine      ports.ExecutionEngine
	fsaccess             ports.FileSystemAccess
	listener             ports.TransformListener
	tracer               ports.Tracer
	immutableWorkspaces  ports.WorkspaceProvider
	projectWorkspaces    func(projectPath string) ports.WorkspaceProvider
}

// NewInvocationFactory wires the collaborators the factory needs.
// projectWorkspaces resolves the workspace provider scoped to a given
// producer project; it is only consulted when the subject identifies a
// local project.
func NewInvocationFactory(
	executionEngine ports.ExecutionEngine,
	fsaccess ports.FileSystemAccess,
	listener ports.TransformListener,
	tracer ports.Tracer,
	immutableWorkspaces ports.WorkspaceProvider,
	projectWorkspaces func(projectPath string) ports.WorkspaceProvider,
) *InvocationFactory {
	return &InvocationFactory{
		executionEngine:     executionEngine,
		fsaccess:            fsaccess,
		listener:            listener,
		tracer:              tracer,
		immutableWorkspaces: immutableWorkspaces,
		projectWorkspaces:   projectWorkspaces,
	}
}

// CreateInvocation builds the unit of work matching subject, submits it to
// the execution engine, and returns a deferred Invocation: already-resolved
// if the engine found a cached workspace, otherwise a thunk that will run
// the transformer (firing the listener pair around it) when resolved.
func (f *InvocationFactory) CreateInvocation(
	ctx context.Context,
	transformer domain.Transformer,
	inputArtifact string,
	dependencies domain.ArtifactTransformDependencies,
	subject domain.TransformationSubject,
) (Invocation, error) {
	inputArtifact, err := filepath.Abs(inputArtifact)
	if err != nil {
		return Invocation{}, zerr.Wrap(err, "failed to resolve input artifact to an absolute path")
	}

	workspaces := f.immutableWorkspaces
	var uow ports.UnitOfWork

	if projectPath, isLocal := determineProducerProject(subject); isLocal {
		workspaces = f.projectWorkspaces(projectPath)
		uow = NewMutableExecution(transformer, inputArtifact, dependencies, f.tracer)
	} else {
		uow = NewImmutableExecution(transformer, inputArtifact, dependencies, f.tracer, f.fsaccess)
	}

	displayName := uow.DisplayName()

	deferred, err := f.executionEngine.Submit(ctx, uow, workspaces)
	if err != nil {
		return Invocation{}, domain.WrapTransformFailure(displayName, err)
	}

	if deferred.Cached {
		resultErr := deferred.Err
		if resultErr != nil {
			resultErr = domain.WrapTransformFailure(displayName, resultErr)
		}
		return CachedInvocation(deferred.Value, resultErr), nil
	}

	return NonCachedInvocation(func(ctx context.Context) ([]string, error) {
		transformerName := transformer.DisplayName()
		f.listener.BeforeTransformerInvocation(transformerName, subject)
		defer f.listener.AfterTransformerInvocation(transformerName, subject)

		value, err := deferred.Force(ctx)
		if err != nil {
			return nil, domain.WrapTransformFailure(displayName, err)
		}
		return value, nil
	}), nil
}

// determineProducerProject reports the producer project path for subject,
// and whether it identifies a local project at all.
func determineProducerProject(subject domain.TransformationSubject) (string, bool) {
	project, ok := subject.InitialComponentIdentifier.(domain.ProjectIdentifier)
	if !ok {
		return "", false
	}
	return project.ProjectPath, true
}
