package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vito/progrock"
	xformprogrock "go.trai.ch/xform/internal/adapters/telemetry/progrock"
)

func TestTracerIntegration(t *testing.T) {
	tracer := xformprogrock.NewTracer(progrock.NewTape())

	_, span := tracer.Start(context.Background(), "Minify a.jar")

	if _, err := span.Write([]byte("compressing...\n")); err != nil {
		t.Errorf("failed to write to span: %v", err)
	}

	span.SetAttribute("inputArtifact", "a.jar")
	span.RecordError(errors.New("boom"))
	span.End()
}
