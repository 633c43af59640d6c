package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/xform/internal/core/domain"
)

func TestEncodeDecodeResultsRoundTrip(t *testing.T) {
	workspace := t.TempDir()
	inputArtifact := filepath.Join(t.TempDir(), "input")
	require.NoError(t, os.MkdirAll(inputArtifact, 0o755))

	outputDir := domain.OutputDir(workspace)
	require.NoError(t, os.MkdirAll(outputDir, 0o755))

	result := []string{
		outputDir,
		filepath.Join(outputDir, "a.txt"),
		filepath.Join(outputDir, "nested", "b.txt"),
		inputArtifact,
		filepath.Join(inputArtifact, "c.txt"),
	}

	require.NoError(t, encodeResults(workspace, inputArtifact, result))

	decoded, err := decodeResults(workspace, inputArtifact)
	require.NoError(t, err)
	require.Equal(t, result, decoded)
}

func TestEncodeResultsRejectsPathOutsideArtifactOrOutput(t *testing.T) {
	workspace := t.TempDir()
	inputArtifact := filepath.Join(t.TempDir(), "input")

	err := encodeResults(workspace, inputArtifact, []string{"/somewhere/else/file.txt"})
	require.ErrorIs(t, err, domain.ErrInvalidResultPath)
}

func TestDecodeResultsRejectsUnparsableLine(t *testing.T) {
	workspace := t.TempDir()
	require.NoError(t, os.WriteFile(domain.ResultsFile(workspace), []byte("garbage/line\n"), 0o644))

	_, err := decodeResults(workspace, "/input")
	require.ErrorIs(t, err, domain.ErrUnparsableResultLine)
}

func TestEncodeResultsEmpty(t *testing.T) {
	workspace := t.TempDir()
	require.NoError(t, encodeResults(workspace, "/input", nil))

	decoded, err := decodeResults(workspace, "/input")
	require.NoError(t, err)
	require.Empty(t, decoded)
}
