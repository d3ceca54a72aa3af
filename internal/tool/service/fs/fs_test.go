package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	fs := NewOSFileSystem(0)

	require.NoError(t, fs.WriteFileAtomic(path, []byte("one"), 0o644))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("two"), 0o644))

	got, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAppendFile_CreatesThenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	fs := NewOSFileSystem(0)

	require.NoError(t, fs.AppendFile(path, []byte("a"), 0o644))
	require.NoError(t, fs.AppendFile(path, []byte("b"), 0o644))

	got, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(got))
}

func TestReadFile_Limits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	_, err := NewOSFileSystem(5).ReadFile(path)
	var tooLarge *TooLargeError
	assert.True(t, errors.As(err, &tooLarge))

	_, err = NewOSFileSystem(0).ReadFile(dir)
	var isDir *IsDirectoryError
	assert.True(t, errors.As(err, &isDir))

	_, err = NewOSFileSystem(0).ReadFile(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	fs := NewOSFileSystem(0)

	entries, err := fs.ListDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.txt", "b.txt", "c"}, names)

	_, err = fs.ListDir(filepath.Join(dir, "a.txt"))
	var notDir *NotADirectoryError
	assert.True(t, errors.As(err, &notDir))
}
