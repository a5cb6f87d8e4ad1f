package exporter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exportgen/internal/adapters/fs"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exportgen/internal/adapters/genex" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/exportgen/internal/core/ports"
)

// NodeID is the unique identifier for the exporter Graft node.
const NodeID graft.ID = "engine.exporter"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			genex.NodeID,
			fs.OpenerNodeID,
		},
		Run: func(ctx context.Context) (*Generator, error) {
			evaluator, err := graft.Dep[ports.ExpressionEvaluator](ctx)
			if err != nil {
				return nil, err
			}

			opener, err := graft.Dep[ports.StreamOpener](ctx)
			if err != nil {
				return nil, err
			}

			return New(evaluator, opener), nil
		},
	})
}
