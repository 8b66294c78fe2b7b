package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/framegraph/internal/adapters/logger"
	"go.trai.ch/framegraph/internal/adapters/scene"
	"go.trai.ch/framegraph/internal/core/ports"
)

// Components bundles the fully wired application for the CLI entrypoint.
type Components struct {
	App    *App
	Logger ports.Logger
}

// ComponentsNodeID is the unique identifier for the application Graft node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, scene.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.SceneLoader](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, log),
				Logger: log,
			}, nil
		},
	})
}
