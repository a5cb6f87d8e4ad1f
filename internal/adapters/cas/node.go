package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
)

// NodeID is the unique identifier for the manifest store Graft node.
const NodeID graft.ID = "adapter.manifest_store"

func init() {
	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestStore, error) {
			store, err := NewStore(domain.DefaultManifestPath())
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
