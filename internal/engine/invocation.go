package engine

import "context"

// Invocation is the deferred result of requesting a transform: either the
// output was already available from a cached workspace (Cached), or it must
// be produced by running the transformer and firing the listener pair
// around it (NonCached). Resolve forces either case uniformly.
type Invocation struct {
	cached bool
	value  []string
	err    error
	thunk  func(ctx context.Context) ([]string, error)
}

// CachedInvocation wraps an already-resolved result.
func CachedInvocation(value []string, err error) Invocation {
	return Invocation{cached: true, value: value, err: err}
}

// NonCachedInvocation wraps a thunk that produces the result when forced.
func NonCachedInvocation(thunk func(ctx context.Context) ([]string, error)) Invocation {
	return Invocation{cached: false, thunk: thunk}
}

// IsCached reports whether this invocation's result was already available
// without running the transformer.
func (i Invocation) IsCached() bool {
	return i.cached
}

// Resolve returns the invocation's result, running the transformer if (and
// only if) it was deferred.
func (i Invocation) Resolve(ctx context.Context) ([]string, error) {
	if i.cached {
		return i.value, i.err
	}
	return i.thunk(ctx)
}
