// Package cas implements the generation manifest store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore using a flat JSON file keyed by installed descriptor.
type Store struct {
	path    string
	mu      sync.RWMutex
	results map[string]domain.GenerationResult
}

// NewStore creates a new ManifestStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		results: make(map[string]domain.GenerationResult),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.results); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

// save writes the manifest. The caller must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.results, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the result recorded under key.
func (s *Store) Get(key string) (*domain.GenerationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[key]
	if !ok {
		return nil, nil
	}
	return &result, nil
}

// Put stores the result and saves the manifest.
func (s *Store) Put(result domain.GenerationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[result.Key()] = result
	return s.save()
}

// List returns every recorded result ordered by key.
func (s *Store) List() ([]domain.GenerationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.GenerationResult, 0, len(s.results))
	for _, key := range slices.Sorted(maps.Keys(s.results)) {
		out = append(out, s.results[key])
	}
	return out, nil
}
