package ports

import "context"

// Deferred is the two-state handle an ExecutionEngine hands back for a
// submitted unit of work: either the result was already available (Cached)
// or it must be produced by calling Force. Concurrent Force calls for the
// same identity share one execution; a call made after an earlier one has
// returned executes the unit of work again.
type Deferred struct {
	Cached bool
	Value  []string
	Err    error
	Force  func(ctx context.Context) ([]string, error)
}

// ExecutionEngine is the host collaborator the core never implements: given
// a unit of work and the workspace provider to use for it, it fingerprints
// the identity inputs, consults the workspace cache, and either resolves
// immediately from a cached workspace or returns a thunk that executes the
// unit of work when forced.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type ExecutionEngine interface {
	Submit(ctx context.Context, uow UnitOfWork, workspaces WorkspaceProvider) (Deferred, error)
}
