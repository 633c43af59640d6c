package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write implements io.Writer, streaming to the vertex's stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError implements ports.Span. The recorded error is surfaced when the
// span ends, matching how a vertex reports success or failure as one event.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute implements ports.Span by logging a key/value line, since a
// progrock vertex has no separate attribute bag.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End implements ports.Span.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
