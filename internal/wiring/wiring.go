// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/emojilens/internal/adapters/config"
	_ "go.trai.ch/emojilens/internal/adapters/imaging"
	_ "go.trai.ch/emojilens/internal/adapters/logger"
	_ "go.trai.ch/emojilens/internal/adapters/sink"
	_ "go.trai.ch/emojilens/internal/adapters/store"
	_ "go.trai.ch/emojilens/internal/adapters/telegram"
	_ "go.trai.ch/emojilens/internal/adapters/telemetry"
	_ "go.trai.ch/emojilens/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/emojilens/internal/app"
)
