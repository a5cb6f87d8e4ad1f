// Package telemetry provides telemetry adapters that record generation progress.
package telemetry

import (
	"context"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
)

// NoOp is a ports.Telemetry that discards everything it records.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx carrying a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Log(domain.LogLevel, string) {}

func (noopVertex) Complete(error) {}
