// Package engine implements the transformer invocation core: identity
// computation, the results-file codec, and the invocation factory that
// dispatches between immutable and mutable workspace semantics.
package engine

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

// encodeResults writes the portable results file for workspace: every path
// in result is rewritten relative to either the output directory or the
// input artifact and tagged with the matching prefix token, so the file
// stays valid if the workspace is later relocated.
func encodeResults(workspace, inputArtifact string, result []string) error {
	outputDir := domain.OutputDir(workspace)
	outputDirPrefix := outputDir + string(filepath.Separator)
	inputArtifactPrefix := inputArtifact + string(filepath.Separator)

	lines := make([]string, 0, len(result))
	for _, file := range result {
		switch {
		case file == outputDir:
			lines = append(lines, domain.OutputFilePrefix)
		case file == inputArtifact:
			lines = append(lines, domain.InputFilePrefix)
		case strings.HasPrefix(file, outputDirPrefix):
			lines = append(lines, domain.OutputFilePrefix+filepath.ToSlash(file[len(outputDirPrefix):]))
		case strings.HasPrefix(file, inputArtifactPrefix):
			lines = append(lines, domain.InputFilePrefix+filepath.ToSlash(file[len(inputArtifactPrefix):]))
		default:
			return zerr.With(zerr.Wrap(domain.ErrInvalidResultPath, ""), "path", file)
		}
	}

	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(domain.ResultsFile(workspace), []byte(content), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write results file")
	}
	return nil
}

// decodeResults reads back a results file written by encodeResults,
// re-expanding each "o/"/"i/" token against the output directory or input
// artifact currently in effect for workspace.
func decodeResults(workspace, inputArtifact string) ([]string, error) {
	outputDir := domain.OutputDir(workspace)

	raw, err := os.ReadFile(domain.ResultsFile(workspace))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read results file")
	}

	text := strings.TrimSuffix(string(raw), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case line == domain.OutputFilePrefix:
			result = append(result, outputDir)
		case strings.HasPrefix(line, domain.OutputFilePrefix):
			result = append(result, filepath.Join(outputDir, filepath.FromSlash(line[len(domain.OutputFilePrefix):])))
		case line == domain.InputFilePrefix:
			result = append(result, inputArtifact)
		case strings.HasPrefix(line, domain.InputFilePrefix):
			result = append(result, filepath.Join(inputArtifact, filepath.FromSlash(line[len(domain.InputFilePrefix):])))
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrUnparsableResultLine, ""), "line", line)
		}
	}
	return result, nil
}
