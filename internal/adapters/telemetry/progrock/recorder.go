// Package progrock provides the Progrock implementation of ports.Tracer.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/xform/internal/core/ports"
)

// Tracer implements ports.Tracer using a progrock tape, rendering each span
// as a vertex in the build's progress tree.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Tracer writing to a default in-memory tape.
func New() ports.Tracer {
	tape := progrock.NewTape()
	return NewTracer(tape)
}

// NewTracer creates a new Tracer with the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{w: w, rec: progrock.NewRecorder(w)}
}

// Start implements ports.Tracer.
func (t *Tracer) Start(ctx context.Context, name string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := t.rec.Vertex(d, name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the underlying tape.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
