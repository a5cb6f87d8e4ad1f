package ports

import "go.trai.ch/exportgen/internal/core/domain"

// ManifestStore records which descriptor files each installation produced.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the result recorded under key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.GenerationResult, error)

	// Put stores the result under its key.
	Put(result domain.GenerationResult) error

	// List returns every recorded result ordered by key.
	List() ([]domain.GenerationResult, error)
}
