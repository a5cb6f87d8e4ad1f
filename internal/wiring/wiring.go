// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/exportgen/internal/adapters/cas"
	_ "go.trai.ch/exportgen/internal/adapters/config"
	_ "go.trai.ch/exportgen/internal/adapters/fs"
	_ "go.trai.ch/exportgen/internal/adapters/genex"
	_ "go.trai.ch/exportgen/internal/adapters/logger"
	_ "go.trai.ch/exportgen/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/exportgen/internal/app"
	_ "go.trai.ch/exportgen/internal/engine/exporter"
)
