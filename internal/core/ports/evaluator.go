// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/exportgen/internal/core/domain"

// ExpressionEvaluator evaluates the generator expressions embedded in build-time property values.
//
//go:generate go run go.uber.org/mock/mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type ExpressionEvaluator interface {
	// Evaluate resolves expr for the given interface context on behalf of artifact.
	//
	// Content guarded by the other context is removed; content guarded by the requested
	// context is kept with its guard stripped. Expressions the evaluator does not own
	// are left in place for the consumer to evaluate.
	Evaluate(expr string, ctx domain.EvalContext, artifact *domain.Artifact) (string, error)
}
