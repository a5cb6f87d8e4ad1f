package ports

import "go.trai.ch/exportgen/internal/core/domain"

// PlanLoader defines the interface for loading the install plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=plan_loader.go -destination=mocks/mock_plan_loader.go -package=mocks
type PlanLoader interface {
	// Load reads the plan at path and returns a populated registry snapshot.
	// If path is a directory the plan file is discovered from it upwards.
	Load(path string) (*domain.Plan, error)
}
