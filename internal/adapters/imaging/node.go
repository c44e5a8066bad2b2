package imaging

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/emojilens/internal/core/ports"
)

// NodeID is the unique identifier for the asset encoder Graft node.
const NodeID graft.ID = "adapter.asset_encoder"

func init() {
	graft.Register(graft.Node[ports.AssetEncoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
