// Package examplexform provides a reference domain.Transformer: it copies
// the input artifact into the workspace, uppercasing file contents along the
// way when configured to. It exists to exercise the engine end-to-end, the
// way a real transformer plugin would.
package examplexform

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/zerr"
)

var _ domain.Transformer = (*CopyTransform)(nil)

// CopyTransform copies the input artifact (a file or a directory tree) into
// the workspace's output directory, optionally uppercasing file contents.
type CopyTransform struct {
	Uppercase bool
}

// New creates a new CopyTransform.
func New(uppercase bool) *CopyTransform {
	return &CopyTransform{Uppercase: uppercase}
}

// DisplayName implements domain.Transformer.
func (t *CopyTransform) DisplayName() string {
	return "CopyTransform"
}

// ImplementationFingerprint implements domain.Transformer.
func (t *CopyTransform) ImplementationFingerprint() string {
	return "examplexform.CopyTransform/v1"
}

// SecondaryInputHash implements domain.Transformer.
func (t *CopyTransform) SecondaryInputHash() uint64 {
	h := xxhash.New()
	if t.Uppercase {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// InputArtifactNormalizer implements domain.Transformer.
func (t *CopyTransform) InputArtifactNormalizer() domain.Normalizer {
	return domain.NormalizeNameOnly
}

// InputArtifactDirectorySensitivity implements domain.Transformer.
func (t *CopyTransform) InputArtifactDirectorySensitivity() domain.DirectorySensitivity {
	return domain.DirectorySensitive
}

// InputArtifactDependenciesNormalizer implements domain.Transformer.
func (t *CopyTransform) InputArtifactDependenciesNormalizer() domain.Normalizer {
	return domain.NormalizeNameOnly
}

// InputArtifactDependenciesDirectorySensitivity implements domain.Transformer.
func (t *CopyTransform) InputArtifactDependenciesDirectorySensitivity() domain.DirectorySensitivity {
	return domain.IgnoreDirectories
}

// Cacheable implements domain.Transformer.
func (t *CopyTransform) Cacheable() bool {
	return true
}

// RequiresInputChanges implements domain.Transformer.
func (t *CopyTransform) RequiresInputChanges() bool {
	return false
}

// Transform implements domain.Transformer.
func (t *CopyTransform) Transform(_ context.Context, input domain.FileSystemLocation, outputDir string, _ domain.ArtifactTransformDependencies, _ *domain.InputChanges) ([]string, error) {
	info, err := os.Stat(input.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat input artifact"), "path", input.Path)
	}

	if !info.IsDir() {
		dest := filepath.Join(outputDir, filepath.Base(input.Path))
		if err := t.copyFile(input.Path, dest); err != nil {
			return nil, err
		}
		return []string{dest}, nil
	}

	var outputs []string
	err = filepath.WalkDir(input.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(input.Path, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(outputDir, rel)
		if err := t.copyFile(path, dest); err != nil {
			return err
		}
		outputs = append(outputs, dest)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to copy input artifact tree"), "path", input.Path)
	}
	return outputs, nil
}

func (t *CopyTransform) copyFile(src, dest string) error {
	content, err := os.ReadFile(src) //nolint:gosec // path is under a trusted input artifact
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read source file"), "path", src)
	}

	if t.Uppercase {
		content = bytes.ToUpper(content)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", filepath.Dir(dest))
	}

	out, err := os.Create(dest) //nolint:gosec // path is under the engine-owned workspace
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination file"), "path", dest)
	}
	defer out.Close() //nolint:errcheck // best effort close

	if _, err := io.Copy(out, bytes.NewReader(content)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write destination file"), "path", dest)
	}
	return nil
}

// Registry maps transformer names to constructors, used by the demo CLI to
// pick the transformer a manifest names.
var Registry = map[string]func() domain.Transformer{
	"CopyTransform": func() domain.Transformer { return New(false) },
	"UppercaseCopyTransform": func() domain.Transformer {
		return New(true)
	},
}

// Lookup resolves a transformer by name, matching the manifest's declared
// transformer field.
func Lookup(name string) (domain.Transformer, error) {
	ctor, ok := Registry[name]
	if !ok {
		return nil, zerr.With(zerr.New(fmt.Sprintf("unknown transformer %q", name)), "transformer", name)
	}
	return ctor(), nil
}
