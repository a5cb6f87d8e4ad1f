package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/adapters/fs"
)

func writeThrough(t *testing.T, opener interface {
	OpenForWrite(path string) (io.WriteCloser, error)
}, path, content string,
) {
	t.Helper()
	w, err := opener.OpenForWrite(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestFileOpener_CreatesFileAndDirectories(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a", "b", "FooTargets.cmake")

	opener := fs.NewFileOpener(fs.NewHasher())
	writeThrough(t, opener, path, "content")

	got, err := os.ReadFile(path) //nolint:gosec // Test path
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileOpener_CopyIfDifferent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "FooTargets.cmake")
	opener := fs.NewFileOpener(fs.NewHasher())

	writeThrough(t, opener, path, "same")
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, old, old))

	t.Run("unchanged content keeps the file", func(t *testing.T) {
		writeThrough(t, opener, path, "same")

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(old))
	})

	t.Run("changed content replaces the file", func(t *testing.T) {
		writeThrough(t, opener, path, "different")

		got, err := os.ReadFile(path) //nolint:gosec // Test path
		require.NoError(t, err)
		assert.Equal(t, "different", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.False(t, info.ModTime().Equal(old))
	})
}

func TestFileOpener_OpenFailure(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	opener := fs.NewFileOpener(fs.NewHasher())
	w, err := opener.OpenForWrite(filepath.Join(blocker, "FooTargets.cmake"))

	require.Error(t, err)
	assert.Nil(t, w)
	assert.ErrorContains(t, err, "failed to create directory")
}

func TestFileOpener_WriteAfterClose(t *testing.T) {
	opener := fs.NewFileOpener(fs.NewHasher())
	w, err := opener.OpenForWrite(filepath.Join(t.TempDir(), "f.cmake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late"))
	require.ErrorIs(t, err, os.ErrClosed)
	require.NoError(t, w.Close())
}

func TestMemoryOpener(t *testing.T) {
	opener := fs.NewMemoryOpener()

	writeThrough(t, opener, "/out/b.cmake", "second")
	writeThrough(t, opener, "/out/a.cmake", "first")

	assert.Equal(t, []string{"/out/a.cmake", "/out/b.cmake"}, opener.Files())

	content, ok := opener.Content("/out/a.cmake")
	require.True(t, ok)
	assert.Equal(t, "first", content)

	_, ok = opener.Content("/out/missing.cmake")
	assert.False(t, ok)
}

func TestHasher_Matches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CoreTargets.cmake")
	require.NoError(t, os.WriteFile(path, []byte("add_library(Core::core SHARED IMPORTED)\n"), 0o600))

	h := fs.NewHasher()

	tests := []struct {
		name    string
		path    string
		content string
		want    bool
	}{
		{name: "same content", path: path, content: "add_library(Core::core SHARED IMPORTED)\n", want: true},
		{name: "same size", path: path, content: "add_library(Core::util SHARED IMPORTED)\n", want: false},
		{name: "different size", path: path, content: "add_library(Core::core STATIC IMPORTED)\n\n", want: false},
		{name: "missing file", path: filepath.Join(dir, "missing.cmake"), content: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Matches(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := h.Matches(dir, nil)
	require.ErrorContains(t, err, "descriptor is not a regular file")
}
