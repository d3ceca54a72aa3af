package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Request describes one child process.
type Request struct {
	Argv    []string
	Dir     string
	Env     []string
	Stdin   *string // nil leaves stdin closed
	Timeout time.Duration
}

// Result represents the outcome of a command execution.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// OSCommandExecutor runs real processes with a timeout, graceful shutdown and
// bounded output capture.
type OSCommandExecutor struct {
	maxOutput int
	graceful  time.Duration
}

// NewOSCommandExecutor creates an executor. maxOutput caps each captured
// stream in bytes; graceful is how long an interrupted process gets before it
// is killed.
func NewOSCommandExecutor(maxOutput int64, graceful time.Duration) *OSCommandExecutor {
	return &OSCommandExecutor{maxOutput: int(maxOutput), graceful: graceful}
}

// Run starts the process, feeds stdin, collects stdout and stderr separately,
// and waits for exit or timeout. A non-zero exit is reported through
// Result.ExitCode with a nil error; errors are reserved for failures to start,
// timeouts and cancellation.
func (f *OSCommandExecutor) Run(ctx context.Context, req Request) (*Result, error) {
	if len(req.Argv) == 0 {
		return nil, os.ErrInvalid
	}
	name := req.Argv[0]

	// CommandContext is not used: timeouts get an interrupt before the kill.
	cmd := exec.Command(name, req.Argv[1:]...)
	cmd.Dir = req.Dir
	cmd.Env = req.Env

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Cmd: name, Cause: err, Stage: "start"}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &CommandError{Cmd: name, Cause: err, Stage: "start"}
	}
	var stdinPipe io.WriteCloser
	if req.Stdin != nil {
		if stdinPipe, err = cmd.StdinPipe(); err != nil {
			return nil, &CommandError{Cmd: name, Cause: err, Stage: "start"}
		}
	}

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: name, Cause: err, Stage: "start"}
	}

	stdout := newStreamBuffer(f.maxOutput)
	stderr := newStreamBuffer(f.maxOutput)

	// The pumps must drain before cmd.Wait closes the pipes.
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdout, stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(stderr, stderrPipe)
		return err
	})
	if stdinPipe != nil {
		input := *req.Stdin
		g.Go(func() error {
			// A process that exits without reading stdin is not an error.
			_, _ = io.Copy(stdinPipe, strings.NewReader(input))
			return stdinPipe.Close()
		})
	}

	done := make(chan error, 1)
	go func() {
		_ = g.Wait()
		done <- cmd.Wait()
	}()

	var execErr error
	select {
	case err := <-done:
		execErr = err
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		f.reap(done, stdoutPipe, stderrPipe)
		execErr = ctx.Err()
	case <-timer(req.Timeout):
		_ = cmd.Process.Signal(os.Interrupt)
		select {
		case <-done:
		case <-time.After(f.graceful):
			_ = cmd.Process.Kill()
			f.reap(done, stdoutPipe, stderrPipe)
		}
		execErr = &TimeoutError{Argv: req.Argv, After: req.Timeout}
	}

	res := &Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Truncated: stdout.Truncated() || stderr.Truncated(),
	}

	var exitErr *exec.ExitError
	switch {
	case execErr == nil:
	case errors.As(execErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		execErr = nil
	default:
		res.ExitCode = -1
	}
	return res, execErr
}

// reap waits for the wait goroutine after a kill. A grandchild still holding
// the pipes would keep the pumps alive, so the read ends are closed once the
// grace period runs out.
func (f *OSCommandExecutor) reap(done <-chan error, pipes ...io.Closer) {
	select {
	case <-done:
	case <-time.After(f.graceful):
		for _, p := range pipes {
			_ = p.Close()
		}
		<-done
	}
}

// timer returns a channel that fires after d, or never when d <= 0.
func timer(d time.Duration) <-chan time.Time {
	if d <= 0 {
		return nil
	}
	return time.After(d)
}
