package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFileInfo struct {
	name string
	mode os.FileMode
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.mode.IsDir() }
func (m *mockFileInfo) Sys() any           { return nil }

// mockFS is an in-memory tree of plain entries and symlinks.
type mockFS struct {
	entries  map[string]os.FileMode
	symlinks map[string]string
	errs     map[string]error
}

func newMockFS() *mockFS {
	return &mockFS{
		entries:  map[string]os.FileMode{},
		symlinks: map[string]string{},
		errs:     map[string]error{},
	}
}

func (m *mockFS) file(path string)            { m.entries[path] = 0o644 }
func (m *mockFS) dir(path string)             { m.entries[path] = os.ModeDir | 0o755 }
func (m *mockFS) link(path, target string)    { m.symlinks[path] = target }
func (m *mockFS) fail(path string, err error) { m.errs[path] = err }

func (m *mockFS) Lstat(path string) (os.FileInfo, error) {
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	if _, ok := m.symlinks[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeSymlink | 0o777}, nil
	}
	if mode, ok := m.entries[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), mode: mode}, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFS) Readlink(path string) (string, error) {
	if target, ok := m.symlinks[path]; ok {
		return target, nil
	}
	return "", errors.New("not a symlink")
}

func assertDenied(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var ose *OutsideSandboxError
	assert.True(t, errors.As(err, &ose), "expected OutsideSandboxError, got %T: %v", err, err)
}

func TestResolve(t *testing.T) {
	const root = "/sandbox"

	tests := []struct {
		name  string
		setup func(*mockFS)
		path  string
		want  string
	}{
		{name: "relative file", path: "test.txt", want: "/sandbox/test.txt"},
		{name: "absolute inside root", path: "/sandbox/nested/file.txt", want: "/sandbox/nested/file.txt"},
		{name: "root itself", path: ".", want: "/sandbox"},
		{name: "empty path is root", path: "", want: "/sandbox"},
		{
			name:  "dotdot within root",
			setup: func(m *mockFS) { m.dir("/sandbox/nested"); m.file("/sandbox/file.txt") },
			path:  "nested/../file.txt",
			want:  "/sandbox/file.txt",
		},
		{
			name: "missing parents allowed",
			path: "a/b/c/new.txt",
			want: "/sandbox/a/b/c/new.txt",
		},
		{
			name:  "symlink inside root",
			setup: func(m *mockFS) { m.file("/sandbox/target.txt"); m.link("/sandbox/link.txt", "/sandbox/target.txt") },
			path:  "link.txt",
			want:  "/sandbox/target.txt",
		},
		{
			name: "relative symlink chain",
			setup: func(m *mockFS) {
				m.dir("/sandbox/d")
				m.file("/sandbox/d/target.txt")
				m.link("/sandbox/l1", "l2")
				m.link("/sandbox/l2", "d/target.txt")
			},
			path: "l1",
			want: "/sandbox/d/target.txt",
		},
		{
			name: "dotdot after symlinked directory is physical",
			setup: func(m *mockFS) {
				m.dir("/sandbox/real")
				m.dir("/sandbox/real/deep")
				m.link("/sandbox/shortcut", "real/deep")
			},
			path: "shortcut/../x.txt",
			want: "/sandbox/real/x.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newMockFS()
			fs.dir(root)
			if tt.setup != nil {
				tt.setup(fs)
			}

			got, err := NewResolver(root, fs).Resolve(tt.path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Denied(t *testing.T) {
	const root = "/sandbox"

	tests := []struct {
		name  string
		setup func(*mockFS)
		path  string
	}{
		{name: "absolute outside", path: "/etc/passwd"},
		{name: "sibling with shared prefix", path: "/sandbox-other/file"},
		{name: "leading dotdot", path: "../outside/file.txt"},
		{name: "dotdot climbing past root", path: "a/../../etc/passwd"},
		{name: "dotdot through missing dirs", path: "missing/x/../../../etc"},
		{
			name:  "symlink escaping root",
			setup: func(m *mockFS) { m.link("/sandbox/link.txt", "/tmp/outside.txt") },
			path:  "link.txt",
		},
		{
			name:  "relative symlink escaping root",
			setup: func(m *mockFS) { m.link("/sandbox/up", "../../etc") },
			path:  "up/passwd",
		},
		{
			name: "escape hidden in intermediate component of a link target",
			setup: func(m *mockFS) {
				m.dir("/sandbox/sub")
				m.link("/sandbox/sub/out", "/etc")
				m.link("/sandbox/innocent", "sub/out/passwd")
			},
			path: "innocent",
		},
		{
			name: "missing dir then link escaping",
			setup: func(m *mockFS) {
				m.link("/sandbox/esc", "/etc")
			},
			path: "missing/../esc/passwd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newMockFS()
			fs.dir(root)
			if tt.setup != nil {
				tt.setup(fs)
			}

			_, err := NewResolver(root, fs).Resolve(tt.path)

			assertDenied(t, err)
		})
	}
}

func TestResolve_SymlinkLoop(t *testing.T) {
	fs := newMockFS()
	fs.link("/sandbox/a", "/sandbox/b")
	fs.link("/sandbox/b", "/sandbox/a")

	_, err := NewResolver("/sandbox", fs).Resolve("a")

	var tooLong *SymlinkChainTooLongError
	assert.True(t, errors.As(err, &tooLong))
}

func TestResolve_LstatError(t *testing.T) {
	fs := newMockFS()
	fs.fail("/sandbox/locked", os.ErrPermission)

	_, err := NewResolver("/sandbox", fs).Resolve("locked/file")

	var lstatErr *LstatError
	require.True(t, errors.As(err, &lstatErr))
	assert.True(t, errors.Is(err, os.ErrPermission))
}

type osFS struct{}

func (osFS) Lstat(path string) (os.FileInfo, error) { return os.Lstat(path) }
func (osFS) Readlink(path string) (string, error)   { return os.Readlink(path) }

func TestResolve_RealFilesystem(t *testing.T) {
	root, err := CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	outside := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "inner"), 0o755))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape")))
	require.NoError(t, os.Symlink(filepath.Join(root, "inner"), filepath.Join(root, "alias")))

	r := NewResolver(root, osFS{})

	got, err := r.Resolve("alias/new.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "inner", "new.txt"), got)
	assert.Equal(t, "inner/new.txt", r.Rel(got))

	_, err = r.Resolve("escape/secret.txt")
	assertDenied(t, err)
}

func TestCanonicaliseRoot(t *testing.T) {
	t.Run("not a directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := CanonicaliseRoot(file)

		var rootErr *SandboxRootError
		assert.True(t, errors.As(err, &rootErr))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := CanonicaliseRoot(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("symlinked root is resolved", func(t *testing.T) {
		real := t.TempDir()
		link := filepath.Join(t.TempDir(), "link")
		require.NoError(t, os.Symlink(real, link))

		got, err := CanonicaliseRoot(link)

		require.NoError(t, err)
		want, _ := filepath.EvalSymlinks(real)
		assert.Equal(t, want, got)
	})
}
