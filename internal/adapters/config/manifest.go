// Package config loads the YAML manifest that drives a single demo
// transform invocation for cmd/xform.
package config

import (
	"os"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Manifest is the on-disk shape of an xform run manifest: everything needed
// to build one domain.TransformationSubject and drive it through the engine.
type Manifest struct {
	Transformer          string            `yaml:"transformer"`
	InputArtifact        string            `yaml:"inputArtifact"`
	Dependencies         []string          `yaml:"dependencies"`
	SecondaryInputs      map[string]string `yaml:"secondaryInputs"`
	ProducerProject      string            `yaml:"producerProject"`
	ExternalCoordinates  string            `yaml:"externalCoordinates"`
}

// Subject builds the domain.TransformationSubject this manifest describes.
// A non-empty ProducerProject selects the mutable, project-producer
// workspace variant; otherwise the artifact is treated as external, keyed by
// ExternalCoordinates.
func (m Manifest) Subject() domain.TransformationSubject {
	if m.ProducerProject != "" {
		return domain.TransformationSubject{
			InitialComponentIdentifier: domain.ProjectIdentifier{ProjectPath: m.ProducerProject},
		}
	}
	return domain.TransformationSubject{
		InitialComponentIdentifier: domain.ExternalIdentifier{Coordinates: m.ExternalCoordinates},
	}
}

// Dependency returns the dependency file collection this manifest declares.
func (m Manifest) Dependency() domain.ArtifactTransformDependencies {
	return domain.ArtifactTransformDependencies{Files: m.Dependencies}
}

// Loader reads a Manifest from a YAML file on disk.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the manifest at path.
func (l *Loader) Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the CLI caller
	if err != nil {
		return Manifest{}, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}
	if m.Transformer == "" {
		return Manifest{}, zerr.With(zerr.New("manifest is missing a transformer name"), "path", path)
	}
	if m.InputArtifact == "" {
		return Manifest{}, zerr.With(zerr.New("manifest is missing an inputArtifact"), "path", path)
	}
	return m, nil
}
