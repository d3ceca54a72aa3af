package pathutil

import "fmt"

// OutsideSandboxError indicates a path resolves outside the sandbox root.
type OutsideSandboxError struct {
	Path string
}

func (e *OutsideSandboxError) Error() string {
	if e.Path == "" {
		return "access denied: path is outside the sandbox root"
	}
	return fmt.Sprintf("access denied: %s is outside the sandbox root", e.Path)
}

// OutsideWorkspace implements the behavioral interface for cross-package error checking.
func (e *OutsideSandboxError) OutsideWorkspace() bool {
	return true
}

// ErrOutsideSandbox is returned when a path escapes the sandbox boundary.
var ErrOutsideSandbox = &OutsideSandboxError{}

// SandboxRootError is returned when the sandbox root is invalid.
type SandboxRootError struct {
	Root  string
	Cause error
}

func (e *SandboxRootError) Error() string {
	return fmt.Sprintf("invalid sandbox root %s: %v", e.Root, e.Cause)
}

func (e *SandboxRootError) Unwrap() error {
	return e.Cause
}

// SymlinkChainTooLongError is returned when a symlink chain exceeds maxHops.
type SymlinkChainTooLongError struct {
	MaxHops int
}

func (e *SymlinkChainTooLongError) Error() string {
	return fmt.Sprintf("symlink chain too long (max %d hops)", e.MaxHops)
}

func (e *SymlinkChainTooLongError) InvalidArgument() bool {
	return true
}

// LstatError is returned when lstat fails for a reason other than absence.
type LstatError struct {
	Path  string
	Cause error
}

func (e *LstatError) Error() string {
	return fmt.Sprintf("failed to lstat path %s: %v", e.Path, e.Cause)
}

func (e *LstatError) Unwrap() error {
	return e.Cause
}

// ReadlinkError is returned when readlink fails.
type ReadlinkError struct {
	Path  string
	Cause error
}

func (e *ReadlinkError) Error() string {
	return fmt.Sprintf("failed to read symlink %s: %v", e.Path, e.Cause)
}

func (e *ReadlinkError) Unwrap() error {
	return e.Cause
}
