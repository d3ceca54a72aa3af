package tool

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Kind is the failure taxonomy shared by every tool.
type Kind string

const (
	KindNone            Kind = ""
	KindDenied          Kind = "Denied"
	KindNotFound        Kind = "NotFound"
	KindInvalidArgument Kind = "InvalidArgument"
	KindNotAllowed      Kind = "NotAllowed"
	KindTimedOut        Kind = "TimedOut"
	KindExecutionError  Kind = "ExecutionError"
)

// Behavioural interfaces. Packages declare their own error types and
// implement whichever of these applies; Classify never needs to import them.
type (
	outsideWorkspace interface{ OutsideWorkspace() bool }
	notFound         interface{ NotFound() bool }
	invalidArgument  interface{ InvalidArgument() bool }
	notAllowed       interface{ NotAllowed() bool }
	timeout          interface{ Timeout() bool }
)

// Classify maps err onto the failure taxonomy. Unrecognised errors are
// ExecutionError.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var ow outsideWorkspace
	if errors.As(err, &ow) && ow.OutsideWorkspace() {
		return KindDenied
	}
	var na notAllowed
	if errors.As(err, &na) && na.NotAllowed() {
		return KindNotAllowed
	}
	var ia invalidArgument
	if errors.As(err, &ia) && ia.InvalidArgument() {
		return KindInvalidArgument
	}
	var nf notFound
	if (errors.As(err, &nf) && nf.NotFound()) || errors.Is(err, fs.ErrNotExist) {
		return KindNotFound
	}
	var to timeout
	if (errors.As(err, &to) && to.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return KindTimedOut
	}
	return KindExecutionError
}

// ArgumentError reports a missing or malformed argument.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
}

func (e *ArgumentError) InvalidArgument() bool { return true }

// MissingArgument reports a required argument that was not supplied.
func MissingArgument(name string) error {
	return &ArgumentError{Name: name, Reason: "required"}
}

// UnknownToolError is returned for a call naming an unregistered tool.
type UnknownToolError struct {
	Name      string
	Available []string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q; available tools: %v", e.Name, e.Available)
}

func (e *UnknownToolError) InvalidArgument() bool { return true }
