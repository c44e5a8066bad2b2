package sink

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emojilens/internal/core/ports"
)

// NodeID is the unique identifier for the sink factory Graft node.
const NodeID graft.ID = "adapter.sink_factory"

func init() {
	graft.Register(graft.Node[ports.SinkFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SinkFactory, error) {
			return NewFactory(), nil
		},
	})
}
