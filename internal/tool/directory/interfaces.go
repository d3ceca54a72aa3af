package directory

import "os"

// pathResolver confines paths to the sandbox root.
type pathResolver interface {
	Resolve(path string) (string, error)
	Rel(abs string) string
}

// fileSystem defines the filesystem operations the directory tools need.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.DirEntry, error)
	EnsureDirs(path string) error
}
