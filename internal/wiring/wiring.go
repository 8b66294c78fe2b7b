// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/framegraph/internal/adapters/logger"
	_ "go.trai.ch/framegraph/internal/adapters/scene"
	// Register app nodes.
	_ "go.trai.ch/framegraph/internal/app"
)
