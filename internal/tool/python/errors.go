package python

import "fmt"

// ScriptNotFoundError is returned when file_path names no regular file.
type ScriptNotFoundError struct {
	Path string
}

func (e *ScriptNotFoundError) Error() string {
	return fmt.Sprintf("python script not found: %s", e.Path)
}

func (e *ScriptNotFoundError) NotFound() bool {
	return true
}
