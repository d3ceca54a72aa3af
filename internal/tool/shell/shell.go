package shell

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/tool/service/executor"
)

// RunCommandTool runs allow-listed programs without a shell.
type RunCommandTool struct {
	commandExecutor commandExecutor
	policy          *Policy
	pathResolver    pathResolver
	fs              statter
	defaultTimeout  time.Duration
	environ         func() []string
}

// NewRunCommandTool creates a new RunCommandTool with injected dependencies.
func NewRunCommandTool(
	commandExecutor commandExecutor,
	policy *Policy,
	pathResolver pathResolver,
	fs statter,
	defaultTimeout time.Duration,
) *RunCommandTool {
	if commandExecutor == nil {
		panic("commandExecutor is required")
	}
	if policy == nil {
		panic("policy is required")
	}
	if pathResolver == nil || fs == nil {
		panic("pathResolver and fs are required")
	}
	return &RunCommandTool{
		commandExecutor: commandExecutor,
		policy:          policy,
		pathResolver:    pathResolver,
		fs:              fs,
		defaultTimeout:  defaultTimeout,
		environ:         os.Environ,
	}
}

func (t *RunCommandTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "run_command",
		Description: "Run an allow-listed program. No shell is involved: pipes, redirections and ; are passed through as plain arguments.",
		Params: []tool.Param{
			{Name: "command", Required: true, Description: "command line, e.g. git status or grep -rn 'TODO' src"},
			{Name: "timeout", Required: false, Description: "seconds before the process is stopped"},
			{Name: "cwd", Required: false, Description: "working directory relative to the sandbox root"},
			{Name: "input", Required: false, Description: "text piped to the process stdin"},
		},
	}
}

// Run splits the command, checks it against the policy and executes it.
// Policy violations never reach the executor. A non-zero exit is a failed
// result that still carries both output streams.
func (t *RunCommandTool) Run(ctx context.Context, req *RunCommandRequest) (tool.Result, error) {
	argv, err := SplitWords(req.Command)
	if err != nil {
		return tool.Result{}, err
	}
	if err := t.policy.Check(argv); err != nil {
		return tool.Result{}, err
	}

	timeout, err := tool.Timeout(req.Timeout, t.defaultTimeout)
	if err != nil {
		return tool.Result{}, err
	}

	dir := t.pathResolver.Root()
	if req.Cwd != nil {
		if dir, err = t.pathResolver.Resolve(*req.Cwd); err != nil {
			return tool.Result{}, err
		}
		info, err := t.fs.Stat(dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return tool.Result{}, err
		}
		if err != nil || !info.IsDir() {
			return tool.Result{}, &WorkingDirError{Path: t.pathResolver.Rel(dir)}
		}
	}

	res, err := t.commandExecutor.Run(ctx, executor.Request{
		Argv:    argv,
		Dir:     dir,
		Env:     ChildEnv(t.environ()),
		Stdin:   req.Input,
		Timeout: timeout,
	})
	if err != nil {
		return tool.Result{}, err
	}
	return ProcessResult(res), nil
}

// ProcessResult converts an executor result into a tool result. Success
// means a zero exit status.
func ProcessResult(res *executor.Result) tool.Result {
	out := tool.Result{
		Success:   res.ExitCode == 0,
		Output:    tool.OutputProcess,
		Stdout:    res.Stdout,
		Stderr:    res.Stderr,
		ExitCode:  res.ExitCode,
		Truncated: res.Truncated,
		Message:   fmt.Sprintf("Process exited with status %d", res.ExitCode),
	}
	if !out.Success {
		out.Kind = tool.KindExecutionError
		out.Error = fmt.Sprintf("exit status %d", res.ExitCode)
		if res.Stderr != "" {
			out.Error += ": " + res.Stderr
		}
	}
	return out
}
