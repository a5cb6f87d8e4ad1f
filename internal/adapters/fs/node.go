package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exportgen/internal/core/ports"
)

const (
	HasherNodeID graft.ID = "adapter.fs.hasher"
	OpenerNodeID graft.ID = "adapter.fs.opener"
)

func init() {
	// Hasher Node (Concrete implementation needed by the opener)
	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	// Opener Node
	graft.Register(graft.Node[ports.StreamOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.StreamOpener, error) {
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileOpener(hasher), nil
		},
	})
}
