package engine

import (
	"context"

	"go.trai.ch/xform/internal/core/domain"
	"go.trai.ch/xform/internal/core/ports"
)

// fakeTransformer is a configurable domain.Transformer test double. It is
// hand-written rather than generated: Transformer is a user-supplied
// callback contract, not an infrastructure port.
type fakeTransformer struct {
	name                    string
	implementationFingerprint string
	secondaryHash           uint64
	normalizer              domain.Normalizer
	sensitivity             domain.DirectorySensitivity
	depsNormalizer          domain.Normalizer
	depsSensitivity         domain.DirectorySensitivity
	cacheable               bool
	requiresInputChanges    bool
	transform               func(ctx context.Context, input domain.FileSystemLocation, outputDir string, deps domain.ArtifactTransformDependencies, changes *domain.InputChanges) ([]string, error)
}

func (f *fakeTransformer) DisplayName() string                 { return f.name }
func (f *fakeTransformer) ImplementationFingerprint() string    { return f.implementationFingerprint }
func (f *fakeTransformer) SecondaryInputHash() uint64           { return f.secondaryHash }
func (f *fakeTransformer) InputArtifactNormalizer() domain.Normalizer { return f.normalizer }
func (f *fakeTransformer) InputArtifactDirectorySensitivity() domain.DirectorySensitivity {
	return f.sensitivity
}
func (f *fakeTransformer) InputArtifactDependenciesNormalizer() domain.Normalizer {
	return f.depsNormalizer
}
func (f *fakeTransformer) InputArtifactDependenciesDirectorySensitivity() domain.DirectorySensitivity {
	return f.depsSensitivity
}
func (f *fakeTransformer) Cacheable() bool            { return f.cacheable }
func (f *fakeTransformer) RequiresInputChanges() bool { return f.requiresInputChanges }
func (f *fakeTransformer) Transform(ctx context.Context, input domain.FileSystemLocation, outputDir string, deps domain.ArtifactTransformDependencies, changes *domain.InputChanges) ([]string, error) {
	return f.transform(ctx, input, outputDir, deps, changes)
}

// recordingIdentityVisitor captures every property VisitIdentityInputs
// declares, without invoking the lazy suppliers until asked.
type recordingIdentityVisitor struct {
	props     map[string]func() (any, error)
	fileProps map[string]func() ([]string, error)
}

func newRecordingIdentityVisitor() *recordingIdentityVisitor {
	return &recordingIdentityVisitor{
		props:     map[string]func() (any, error){},
		fileProps: map[string]func() ([]string, error){},
	}
}

func (v *recordingIdentityVisitor) InputProperty(name string, value func() (any, error)) {
	v.props[name] = value
}

func (v *recordingIdentityVisitor) InputFileProperty(name string, kind ports.InputPropertyKind, files func() ([]string, error)) {
	v.fileProps[name] = files
}

// resolve evaluates every declared property/file-property into plain maps,
// the way a host would before calling Identify.
func (v *recordingIdentityVisitor) resolve() (map[string]any, map[string][]string, error) {
	inputs := map[string]any{}
	for name, supplier := range v.props {
		value, err := supplier()
		if err != nil {
			return nil, nil, err
		}
		inputs[name] = value
	}
	fileInputs := map[string][]string{}
	for name, supplier := range v.fileProps {
		files, err := supplier()
		if err != nil {
			return nil, nil, err
		}
		fileInputs[name] = files
	}
	return inputs, fileInputs, nil
}

// recordingOutputVisitor captures every property VisitOutputs declares.
type recordingOutputVisitor struct {
	props map[string]string
	kinds map[string]ports.TreeKind
}

func newRecordingOutputVisitor() *recordingOutputVisitor {
	return &recordingOutputVisitor{props: map[string]string{}, kinds: map[string]ports.TreeKind{}}
}

func (v *recordingOutputVisitor) OutputProperty(name string, kind ports.TreeKind, path string) {
	v.props[name] = path
	v.kinds[name] = kind
}
