package fs

import (
	"bytes"
	"io"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/exportgen/internal/core/ports"
)

var _ ports.StreamOpener = (*MemoryOpener)(nil)

// MemoryOpener keeps generated files in memory. It backs dry runs.
type MemoryOpener struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryOpener creates an empty MemoryOpener.
func NewMemoryOpener() *MemoryOpener {
	return &MemoryOpener{files: make(map[string][]byte)}
}

// OpenForWrite returns a buffer that is stored under path when closed.
func (o *MemoryOpener) OpenForWrite(path string) (io.WriteCloser, error) {
	return &memoryFile{opener: o, path: path}, nil
}

// Files returns the paths written so far in sorted order.
func (o *MemoryOpener) Files() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Sorted(maps.Keys(o.files))
}

// Content returns the content written to path.
func (o *MemoryOpener) Content(path string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	b, ok := o.files[path]
	return string(b), ok
}

type memoryFile struct {
	opener *MemoryOpener
	path   string
	buf    bytes.Buffer
}

func (f *memoryFile) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *memoryFile) Close() error {
	f.opener.mu.Lock()
	defer f.opener.mu.Unlock()
	f.opener.files[f.path] = bytes.Clone(f.buf.Bytes())
	return nil
}
