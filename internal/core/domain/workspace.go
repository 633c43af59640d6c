package domain

import "path/filepath"

const (
	// TransformedDirName is the transformer's output directory, relative to
	// the workspace root.
	TransformedDirName = "transformed"
	// ResultsFileName is the results manifest, relative to the workspace
	// root.
	ResultsFileName = "results.bin"

	// OutputFilePrefix marks a results-file token as rooted under the output
	// directory.
	OutputFilePrefix = "o/"
	// InputFilePrefix marks a results-file token as rooted under the input
	// artifact.
	InputFilePrefix = "i/"
)

// OutputDir returns the transformer's output directory for a workspace.
func OutputDir(workspace string) string {
	return filepath.Join(workspace, TransformedDirName)
}

// ResultsFile returns the results manifest path for a workspace.
func ResultsFile(workspace string) string {
	return filepath.Join(workspace, ResultsFileName)
}

// Workspace identity-input property names, fixed string literals that are
// part of the external contract because fingerprints are keyed on them.
const (
	PropertyInputArtifact             = "inputArtifact"
	PropertyInputArtifactPath         = "inputArtifactPath"
	PropertyInputArtifactSnapshot     = "inputArtifactSnapshot"
	PropertyInputArtifactDependencies = "inputArtifactDependencies"
	PropertyInputPropertiesHash       = "inputPropertiesHash"
	PropertyOutputDirectory           = "outputDirectory"
	PropertyResultsFile               = "resultsFile"
)
