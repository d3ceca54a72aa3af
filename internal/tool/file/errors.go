package file

import (
	"fmt"
)

// NotFoundError is returned when the file to read does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) NotFound() bool {
	return true
}

// BinaryFileError is returned for content that is not text.
type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return fmt.Sprintf("%s is a binary file and cannot be decoded as text", e.Path)
}

// IsDirectoryError is returned when a file operation targets a directory.
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory", e.Path)
}

func (e *IsDirectoryError) InvalidArgument() bool {
	return true
}

// TooLargeError is returned when content exceeds the configured size limit.
type TooLargeError struct {
	Path  string
	Size  int
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("content for %s is %d bytes, over the %d byte limit", e.Path, e.Size, e.Limit)
}

func (e *TooLargeError) InvalidArgument() bool {
	return true
}

// WriteError wraps a failed write.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// EnsureDirsError wraps a failure to create parent directories.
type EnsureDirsError struct {
	Path  string
	Cause error
}

func (e *EnsureDirsError) Error() string {
	return fmt.Sprintf("failed to create directories for %s: %v", e.Path, e.Cause)
}

func (e *EnsureDirsError) Unwrap() error {
	return e.Cause
}
