package telegram

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emojilens/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher factory Graft node.
const NodeID graft.ID = "adapter.fetcher_factory"

func init() {
	graft.Register(graft.Node[ports.FetcherFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FetcherFactory, error) {
			return NewFactory(), nil
		},
	})
}
