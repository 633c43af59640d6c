// Package app wires the core engine and its reference adapters into a
// single demo entry point: load a manifest, build the subject it describes,
// and drive one transform invocation through to completion.
package app

import (
	"context"

	"go.trai.ch/xform/internal/adapters/config"
	"go.trai.ch/xform/internal/core/ports"
	"go.trai.ch/xform/internal/engine"
	"go.trai.ch/xform/internal/examplexform"
	"go.trai.ch/zerr"
)

// App drives one manifest-described transform invocation through the
// engine.
type App struct {
	loader  *config.Loader
	factory *engine.InvocationFactory
	logger  ports.Logger
}

// New creates an App.
func New(loader *config.Loader, factory *engine.InvocationFactory, logger ports.Logger) *App {
	return &App{loader: loader, factory: factory, logger: logger}
}

// Run loads the manifest at manifestPath, resolves its named transformer,
// and drives the resulting invocation to completion, returning the produced
// output file list.
func (a *App) Run(ctx context.Context, manifestPath string) ([]string, error) {
	manifest, err := a.loader.Load(manifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	transformer, err := examplexform.Lookup(manifest.Transformer)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve transformer")
	}

	invocation, err := a.factory.CreateInvocation(ctx, transformer, manifest.InputArtifact, manifest.Dependency(), manifest.Subject())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create invocation")
	}

	if invocation.IsCached() {
		a.logger.Info("transform result restored from cache")
	} else {
		a.logger.Info("running transform")
	}

	output, err := invocation.Resolve(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "transform invocation failed")
	}
	return output, nil
}
