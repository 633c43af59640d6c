package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/xform/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestAbstractExecutionVisitOutputsDeclaresSpecPropertyNames(t *testing.T) {
	transformer := &fakeTransformer{name: "Copy"}
	tracer := newNoopTracer(t)
	exec := newAbstractExecution(transformer, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, tracer)

	workspace := "/cache/workspaces/abc123"
	visitor := newRecordingOutputVisitor()
	exec.VisitOutputs(workspace, visitor)

	require.Equal(t, domain.OutputDir(workspace), visitor.props[domain.PropertyOutputDirectory])
	require.Equal(t, ports.TreeDirectory, visitor.kinds[domain.PropertyOutputDirectory])
	require.Equal(t, domain.ResultsFile(workspace), visitor.props[domain.PropertyResultsFile])
	require.Equal(t, ports.TreeFile, visitor.kinds[domain.PropertyResultsFile])
	require.Len(t, visitor.props, 2)
}

func TestAbstractExecutionShouldDisableCachingReflectsCacheable(t *testing.T) {
	tracer := newNoopTracer(t)

	cacheable := &fakeTransformer{name: "Cacheable", cacheable: true}
	execCacheable := newAbstractExecution(cacheable, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, tracer)
	require.Nil(t, execCacheable.ShouldDisableCaching())

	notCacheable := &fakeTransformer{name: "NotCacheable", cacheable: false}
	execNotCacheable := newAbstractExecution(notCacheable, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, tracer)
	reason := execNotCacheable.ShouldDisableCaching()
	require.NotNil(t, reason)
	require.Equal(t, "NOT_CACHEABLE", reason.Category)
	require.Equal(t, "Caching not enabled.", reason.Message)
}

func TestImmutableExecutionVisitIdentityInputsDeclaresSpecPropertyNames(t *testing.T) {
	transformer := &fakeTransformer{name: "Minify"}
	tracer := newNoopTracer(t)

	ctrl := gomock.NewController(t)
	fsaccess := mocks.NewMockFileSystemAccess(ctrl)
	fsaccess.EXPECT().Snapshot(gomock.Any()).Return(domain.NewContentSnapshot(0), nil).AnyTimes()
	fsaccess.EXPECT().NormalizePath(gomock.Any(), gomock.Any(), gomock.Any()).Return("p", nil).AnyTimes()

	exec := NewImmutableExecution(transformer, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, tracer, fsaccess)
	visitor := newRecordingIdentityVisitor()
	exec.VisitIdentityInputs(visitor)

	requireExactPropertyNames(t, visitor,
		[]string{domain.PropertyInputArtifactPath, domain.PropertyInputArtifactSnapshot, domain.PropertyInputPropertiesHash},
		[]string{domain.PropertyInputArtifactDependencies},
	)

	regular := newRecordingIdentityVisitor()
	exec.VisitRegularInputs(regular)
	requireExactPropertyNames(t, regular, nil, []string{domain.PropertyInputArtifact})
}

func TestMutableExecutionVisitIdentityInputsDeclaresSpecPropertyNames(t *testing.T) {
	transformer := &fakeTransformer{name: "Instrument"}
	tracer := newNoopTracer(t)

	exec := NewMutableExecution(transformer, "/workspace/proj/out.class", domain.ArtifactTransformDependencies{}, tracer)
	visitor := newRecordingIdentityVisitor()
	exec.VisitIdentityInputs(visitor)

	// The mutable variant keys identity off the raw absolute path passed to
	// Identify directly; it inherits the base identity inputs unchanged and
	// declares neither inputArtifactPath nor inputArtifactSnapshot.
	requireExactPropertyNames(t, visitor,
		[]string{domain.PropertyInputPropertiesHash},
		[]string{domain.PropertyInputArtifactDependencies},
	)

	regular := newRecordingIdentityVisitor()
	exec.VisitRegularInputs(regular)
	requireExactPropertyNames(t, regular, nil, []string{domain.PropertyInputArtifact})
}

func requireExactPropertyNames(t *testing.T, visitor *recordingIdentityVisitor, scalarNames, fileNames []string) {
	t.Helper()

	gotScalar := make([]string, 0, len(visitor.props))
	for name := range visitor.props {
		gotScalar = append(gotScalar, name)
	}
	require.ElementsMatch(t, scalarNames, gotScalar)

	gotFile := make([]string, 0, len(visitor.fileProps))
	for name := range visitor.fileProps {
		gotFile = append(gotFile, name)
	}
	require.ElementsMatch(t, fileNames, gotFile)
}
