// Package fs implements the filesystem side of descriptor generation.
package fs

import (
	"errors"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher decides whether a descriptor on disk already holds generated content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Matches reports whether the file at path holds exactly content. A missing
// file does not match and is not an error.
func (h *Hasher) Matches(path string, content []byte) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open descriptor"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only

	info, err := f.Stat()
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat descriptor"), "path", path)
	}
	if !info.Mode().IsRegular() {
		return false, zerr.With(zerr.New("descriptor is not a regular file"), "path", path)
	}
	if info.Size() != int64(len(content)) {
		return false, nil
	}

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to hash descriptor"), "path", path)
	}
	return d.Sum64() == xxhash.Sum64(content), nil
}
