package directory

import "fmt"

// NotFoundError is returned when the directory does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

func (e *NotFoundError) NotFound() bool {
	return true
}

// NotADirectoryError is returned when a directory operation targets a file.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

func (e *NotADirectoryError) InvalidArgument() bool {
	return true
}
