package shell

import (
	"fmt"
)

// NotAllowedError is returned when a program or git subcommand is not on the
// allow-list. Nothing is spawned.
type NotAllowedError struct {
	Program    string
	Subcommand string
	Reason     string
}

func (e *NotAllowedError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Program, e.Reason)
	case e.Subcommand != "":
		return fmt.Sprintf("git subcommand %q is not allowed", e.Subcommand)
	default:
		return fmt.Sprintf("program %q is not allowed", e.Program)
	}
}

func (e *NotAllowedError) NotAllowed() bool {
	return true
}

// SyntaxError is returned for a command line that cannot be split into words.
type SyntaxError struct {
	Command string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cannot parse command %q: %s", e.Command, e.Reason)
}

func (e *SyntaxError) InvalidArgument() bool {
	return true
}

// CommandRequiredError is returned when a command is missing.
type CommandRequiredError struct{}

func (e *CommandRequiredError) Error() string {
	return "command cannot be empty"
}

func (e *CommandRequiredError) InvalidArgument() bool {
	return true
}

// WorkingDirError is returned when cwd does not name a directory.
type WorkingDirError struct {
	Path string
}

func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("working directory %s does not exist or is not a directory", e.Path)
}

func (e *WorkingDirError) InvalidArgument() bool {
	return true
}
