package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const maxHops = 64

// FileSystem is the minimal filesystem surface path resolution needs.
type FileSystem interface {
	Lstat(path string) (os.FileInfo, error)
	Readlink(path string) (string, error)
}

// CanonicaliseRoot makes root absolute and resolves its symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &SandboxRootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &SandboxRootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &SandboxRootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &SandboxRootError{Root: resolved, Cause: fmt.Errorf("not a directory")}
	}
	return resolved, nil
}

// Resolver confines paths to a canonical sandbox root.
type Resolver struct {
	root string
	fs   FileSystem
}

// NewResolver creates a resolver for an already canonical root.
// Use CanonicaliseRoot first when the root comes from user input.
func NewResolver(root string, fs FileSystem) *Resolver {
	return &Resolver{root: filepath.Clean(root), fs: fs}
}

// Root returns the sandbox root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve canonicalises path (relative paths are taken from the root) and
// returns its absolute form. Symlinks and ".." are resolved one component at
// a time against the real filesystem, so the boundary check sees the path the
// OS would actually open. Components that do not exist yet are allowed, which
// lets write tools target new files.
func (r *Resolver) Resolve(path string) (string, error) {
	parts, err := r.components(path)
	if err != nil {
		return "", &OutsideSandboxError{Path: path}
	}

	hops := 0
	resolved, err := r.walk(r.root, parts, &hops)
	if err != nil {
		if errors.Is(err, ErrOutsideSandbox) {
			return "", &OutsideSandboxError{Path: path}
		}
		return "", err
	}
	return resolved, nil
}

// Rel returns abs relative to the root using forward slashes. The root
// itself is ".".
func (r *Resolver) Rel(abs string) string {
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return abs
	}
	return filepath.ToSlash(rel)
}

// components splits path into the components to walk from the root.
// Absolute input must name the root lexically.
func (r *Resolver) components(path string) ([]string, error) {
	if !filepath.IsAbs(path) {
		return strings.Split(filepath.ToSlash(path), "/"), nil
	}
	rel, err := filepath.Rel(r.root, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, ErrOutsideSandbox
	}
	return strings.Split(filepath.ToSlash(rel), "/"), nil
}

// walk resolves parts starting at the already resolved directory start.
// Symlink targets are walked recursively so that no intermediate component
// is ever followed by the OS unchecked. hops bounds the total number of
// links followed, which also terminates loops.
func (r *Resolver) walk(start string, parts []string, hops *int) (string, error) {
	current := start
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			if current == r.root {
				return "", ErrOutsideSandbox
			}
			current = filepath.Dir(current)
			continue
		}

		next := filepath.Join(current, part)
		info, err := r.fs.Lstat(next)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Missing entries resolve lexically; the parent was already checked.
				current = next
				continue
			}
			return "", &LstatError{Path: next, Cause: err}
		}
		if info.Mode()&os.ModeSymlink == 0 {
			current = next
			continue
		}

		*hops++
		if *hops > maxHops {
			return "", &SymlinkChainTooLongError{MaxHops: maxHops}
		}
		target, err := r.fs.Readlink(next)
		if err != nil {
			return "", &ReadlinkError{Path: next, Cause: err}
		}

		var resolved string
		if filepath.IsAbs(target) {
			targetParts, err := r.components(target)
			if err != nil {
				return "", err
			}
			resolved, err = r.walk(r.root, targetParts, hops)
			if err != nil {
				return "", err
			}
		} else {
			resolved, err = r.walk(current, strings.Split(filepath.ToSlash(target), "/"), hops)
			if err != nil {
				return "", err
			}
		}
		current = resolved
	}

	if !r.within(current) {
		return "", ErrOutsideSandbox
	}
	return current, nil
}

// within reports whether path is the root or a descendant of it.
func (r *Resolver) within(path string) bool {
	path = filepath.Clean(path)
	if path == r.root {
		return true
	}
	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
