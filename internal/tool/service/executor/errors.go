package executor

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"time"
)

// TimeoutError is returned when a process exceeds its timeout and is stopped.
type TimeoutError struct {
	Argv  []string
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("execution timed out after %v", e.After)
}

func (e *TimeoutError) Timeout() bool {
	return true
}

// CommandError is returned when a process cannot be started.
type CommandError struct {
	Cmd   string
	Stage string
	Cause error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Stage, e.Cmd, e.Cause)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

// NotFound reports whether the executable itself could not be found.
func (e *CommandError) NotFound() bool {
	return errors.Is(e.Cause, exec.ErrNotFound) || errors.Is(e.Cause, fs.ErrNotExist)
}
