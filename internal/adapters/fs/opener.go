package fs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/exportgen/internal/core/domain"
	"go.trai.ch/exportgen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StreamOpener = (*FileOpener)(nil)

// FileOpener writes generated files copy-if-different: a file whose content did
// not change is left untouched so its modification time is preserved.
type FileOpener struct {
	hasher *Hasher
}

// NewFileOpener creates a new FileOpener.
func NewFileOpener(hasher *Hasher) *FileOpener {
	return &FileOpener{hasher: hasher}
}

// OpenForWrite creates the parent directory and a temporary file next to path.
// Content is buffered and moved into place on Close.
func (o *FileOpener) OpenForWrite(path string) (io.WriteCloser, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create temporary file"), "path", path)
	}

	return &generatedFile{
		opener: o,
		path:   path,
		tmp:    tmp,
	}, nil
}

type generatedFile struct {
	opener *FileOpener
	path   string
	tmp    *os.File
	buf    bytes.Buffer
	closed bool
}

func (f *generatedFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}
	return f.buf.Write(p)
}

// Close replaces the target file when its content differs from the buffered content.
func (f *generatedFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	tmpName := f.tmp.Name()

	if f.unchanged() {
		return errors.Join(f.tmp.Close(), os.Remove(tmpName))
	}

	if _, err := f.tmp.Write(f.buf.Bytes()); err != nil {
		_ = f.tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to write temporary file"), "path", f.path)
	}
	if err := f.tmp.Chmod(domain.FilePerm); err != nil {
		_ = f.tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to set file mode"), "path", f.path)
	}
	if err := f.tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to close temporary file"), "path", f.path)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, "failed to replace file"), "path", f.path)
	}
	return nil
}

// unchanged reports whether the target already holds the buffered content.
// Unreadable targets are rewritten.
func (f *generatedFile) unchanged() bool {
	same, err := f.opener.hasher.Matches(f.path, f.buf.Bytes())
	return err == nil && same
}
