package genex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/exportgen/internal/core/ports"
)

// NodeID is the unique identifier for the expression evaluator Graft node.
const NodeID graft.ID = "adapter.genex"

func init() {
	graft.Register(graft.Node[ports.ExpressionEvaluator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExpressionEvaluator, error) {
			return NewEvaluator(), nil
		},
	})
}
