package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidResultPath is an IllegalState: the results-file codec refused
	// to encode an output file that lies under neither the output directory
	// nor the input artifact. A programmer error, not a user error. Callers
	// annotate it with the offending path via zerr.With(..., "path", ...).
	ErrInvalidResultPath = zerr.New("Invalid result path:")

	// ErrUnparsableResultLine is an IllegalState: a line in results.bin did
	// not start with the "o/" or "i/" prefix. Callers annotate it with the
	// offending line via zerr.With(..., "line", ...).
	ErrUnparsableResultLine = zerr.New("Cannot parse result path string:")

	// ErrNotCacheable is a sentinel for the not-cacheable condition.
	// ShouldDisableCaching does not return it: it reports that condition as a
	// ports.CachingDisabledReason with the message "Caching not enabled.".
	ErrNotCacheable = zerr.New("caching not enabled")
)

// WrapTransformFailure models TransformException: a user-visible wrapper
// around whatever error the transformer (or the engine driving it) raised,
// named after the failing unit of work.
func WrapTransformFailure(unitDisplayName string, cause error) error {
	return zerr.With(zerr.Wrap(cause, "Execution failed for "+unitDisplayName+"."), "unit", unitDisplayName)
}
