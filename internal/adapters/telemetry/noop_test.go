package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/adapters/telemetry"
	"go.trai.ch/xform/internal/core/ports"
)

func TestNoOpTracerSatisfiesPorts(t *testing.T) {
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)

	tracer := telemetry.NewNoOpTracer()
	_, span := tracer.Start(context.Background(), "whatever")
	span.SetAttribute("key", "value")
	span.RecordError(nil)

	n, err := span.Write([]byte("log line"))
	require.NoError(t, err)
	require.Equal(t, len("log line"), n)

	span.End()
}
