package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/xform/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newInvocationFactoryTest(t *testing.T) (*InvocationFactory, *mocks.MockExecutionEngine, *mocks.MockFileSystemAccess, *mocks.MockTransformListener, *mocks.MockWorkspaceProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	engineMock := mocks.NewMockExecutionEngine(ctrl)
	fsaccess := mocks.NewMockFileSystemAccess(ctrl)
	listener := mocks.NewMockTransformListener(ctrl)
	immutableWorkspaces := mocks.NewMockWorkspaceProvider(ctrl)
	tracer := newNoopTracer(t)

	factory := NewInvocationFactory(engineMock, fsaccess, listener, tracer, immutableWorkspaces, func(string) ports.WorkspaceProvider {
		return immutableWorkspaces
	})
	return factory, engineMock, fsaccess, listener, immutableWorkspaces
}

func TestCreateInvocationUsesImmutableExecutionForExternalSubject(t *testing.T) {
	factory, engineMock, _, _, immutableWorkspaces := newInvocationFactoryTest(t)

	var capturedUow ports.UnitOfWork
	engineMock.EXPECT().Submit(gomock.Any(), gomock.Any(), immutableWorkspaces).DoAndReturn(
		func(ctx context.Context, uow ports.UnitOfWork, _ ports.WorkspaceProvider) (ports.Deferred, error) {
			capturedUow = uow
			return ports.Deferred{Cached: true, Value: []string{"out"}}, nil
		},
	)

	transformer := &fakeTransformer{name: "Minify"}
	subject := domain.TransformationSubject{InitialComponentIdentifier: domain.ExternalIdentifier{Coordinates: "g:a:1"}}

	invocation, err := factory.CreateInvocation(context.Background(), transformer, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, subject)
	require.NoError(t, err)
	require.True(t, invocation.IsCached())

	_, isImmutable := capturedUow.(*ImmutableExecution)
	require.True(t, isImmutable)
}

func TestCreateInvocationUsesMutableExecutionForProjectSubject(t *testing.T) {
	factory, engineMock, _, _, _ := newInvocationFactoryTest(t)

	var capturedUow ports.UnitOfWork
	engineMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, uow ports.UnitOfWork, _ ports.WorkspaceProvider) (ports.Deferred, error) {
			capturedUow = uow
			return ports.Deferred{Cached: true, Value: []string{"out"}}, nil
		},
	)

	transformer := &fakeTransformer{name: "Instrument"}
	subject := domain.TransformationSubject{InitialComponentIdentifier: domain.ProjectIdentifier{ProjectPath: ":app"}}

	_, err := factory.CreateInvocation(context.Background(), transformer, "/workspace/app/out.class", domain.ArtifactTransformDependencies{}, subject)
	require.NoError(t, err)

	_, isMutable := capturedUow.(*MutableExecution)
	require.True(t, isMutable)
}

func TestCreateInvocationWrapsCachedFailure(t *testing.T) {
	factory, engineMock, _, _, _ := newInvocationFactoryTest(t)

	cause := errors.New("boom")
	engineMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(ports.Deferred{Cached: true, Err: cause}, nil)

	transformer := &fakeTransformer{name: "Minify"}
	subject := domain.TransformationSubject{InitialComponentIdentifier: domain.ExternalIdentifier{Coordinates: "g:a:1"}}

	invocation, err := factory.CreateInvocation(context.Background(), transformer, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, subject)
	require.NoError(t, err)

	_, resolveErr := invocation.Resolve(context.Background())
	require.Error(t, resolveErr)
	require.ErrorIs(t, resolveErr, cause)
}

func TestCreateInvocationFiresListenerPairAroundNonCachedExecution(t *testing.T) {
	factory, engineMock, _, listener, _ := newInvocationFactoryTest(t)

	forced := false
	engineMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(ports.Deferred{
		Cached: false,
		Force: func(ctx context.Context) ([]string, error) {
			forced = true
			return []string{"produced"}, nil
		},
	}, nil)

	transformer := &fakeTransformer{name: "Minify"}
	subject := domain.TransformationSubject{InitialComponentIdentifier: domain.ExternalIdentifier{Coordinates: "g:a:1"}}

	gomock.InOrder(
		listener.EXPECT().BeforeTransformerInvocation("Minify", subject),
		listener.EXPECT().AfterTransformerInvocation("Minify", subject),
	)

	invocation, err := factory.CreateInvocation(context.Background(), transformer, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, subject)
	require.NoError(t, err)
	require.False(t, invocation.IsCached())

	result, err := invocation.Resolve(context.Background())
	require.NoError(t, err)
	require.True(t, forced)
	require.Equal(t, []string{"produced"}, result)
}

func TestCreateInvocationFiresListenerPairEvenOnExecutionError(t *testing.T) {
	factory, engineMock, _, listener, _ := newInvocationFactoryTest(t)

	cause := errors.New("transform failed")
	engineMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(ports.Deferred{
		Cached: false,
		Force: func(ctx context.Context) ([]string, error) {
			return nil, cause
		},
	}, nil)

	transformer := &fakeTransformer{name: "Minify"}
	subject := domain.TransformationSubject{InitialComponentIdentifier: domain.ExternalIdentifier{Coordinates: "g:a:1"}}

	gomock.InOrder(
		listener.EXPECT().BeforeTransformerInvocation("Minify", subject),
		listener.EXPECT().AfterTransformerInvocation("Minify", subject),
	)

	invocation, err := factory.CreateInvocation(context.Background(), transformer, "/artifacts/a.jar", domain.ArtifactTransformDependencies{}, subject)
	require.NoError(t, err)

	_, err = invocation.Resolve(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, cause)
}
