package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emojilens/internal/adapters/logger"
	"go.trai.ch/emojilens/internal/core/ports"
)

// NodeID is the unique identifier for the tracing Graft node.
const NodeID graft.ID = "adapter.tracing"

func init() {
	graft.Register(graft.Node[ports.Tracing]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracing, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracing(log), nil
		},
	})
}
