// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xform/internal/adapters/config"
	_ "go.trai.ch/xform/internal/adapters/engine"
	_ "go.trai.ch/xform/internal/adapters/fs"
	_ "go.trai.ch/xform/internal/adapters/listener"
	_ "go.trai.ch/xform/internal/adapters/logger"
	_ "go.trai.ch/xform/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/xform/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/xform/internal/app"
	_ "go.trai.ch/xform/internal/engine"
)
