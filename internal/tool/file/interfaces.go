package file

import "os"

// pathResolver confines paths to the sandbox root.
type pathResolver interface {
	Resolve(path string) (string, error)
	Rel(abs string) string
}

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	ReadFile(path string) ([]byte, error)
}

// fileWriter defines the minimal filesystem operations needed for writing files.
type fileWriter interface {
	Stat(path string) (os.FileInfo, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	AppendFile(path string, content []byte, perm os.FileMode) error
	EnsureDirs(path string) error
}
