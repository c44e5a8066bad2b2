package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emojilens/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/adapters/imaging"   //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/adapters/sink"      //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/adapters/telegram"  //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/emojilens/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			store.NodeID,
			imaging.NodeID,
			telegram.NodeID,
			sink.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	cacheStore, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}
	encoder, err := graft.Dep[ports.AssetEncoder](ctx)
	if err != nil {
		return nil, err
	}
	fetchers, err := graft.Dep[ports.FetcherFactory](ctx)
	if err != nil {
		return nil, err
	}
	sinks, err := graft.Dep[ports.SinkFactory](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	tracing, err := graft.Dep[ports.Tracing](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, cacheStore, encoder, fetchers, sinks, w, tracing, log), nil
}
