package python

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/tool/service/executor"
	"github.com/Cyclone1070/offcode/internal/tool/shell"
)

// ExecutePythonTool runs Python source or a sandboxed script file with the
// sandbox root as working directory.
type ExecutePythonTool struct {
	commandExecutor commandExecutor
	pathResolver    pathResolver
	fs              statter
	binary          string
	defaultTimeout  time.Duration
	environ         func() []string
}

// NewExecutePythonTool creates a new ExecutePythonTool with injected dependencies.
func NewExecutePythonTool(
	commandExecutor commandExecutor,
	pathResolver pathResolver,
	fs statter,
	binary string,
	defaultTimeout time.Duration,
) *ExecutePythonTool {
	if commandExecutor == nil || pathResolver == nil || fs == nil {
		panic("commandExecutor, pathResolver and fs are required")
	}
	if binary == "" {
		binary = "python3"
	}
	return &ExecutePythonTool{
		commandExecutor: commandExecutor,
		pathResolver:    pathResolver,
		fs:              fs,
		binary:          binary,
		defaultTimeout:  defaultTimeout,
		environ:         os.Environ,
	}
}

func (t *ExecutePythonTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        "execute_python",
		Description: "Execute Python code, or a Python file inside the sandbox, and capture stdout and stderr.",
		Params: []tool.Param{
			{Name: "code", Required: false, Description: "Python source; use ''' for multi-line code"},
			{Name: "file_path", Required: false, Description: "script path relative to the sandbox root, instead of code"},
			{Name: "timeout", Required: false, Description: "seconds before the interpreter is stopped"},
		},
	}
}

// Run executes the interpreter to completion or until the timeout expires.
func (t *ExecutePythonTool) Run(ctx context.Context, req *ExecutePythonRequest) (tool.Result, error) {
	timeout, err := tool.Timeout(req.Timeout, t.defaultTimeout)
	if err != nil {
		return tool.Result{}, err
	}

	argv := []string{t.binary}
	if req.FilePath != nil {
		abs, err := t.pathResolver.Resolve(*req.FilePath)
		if err != nil {
			return tool.Result{}, err
		}
		info, err := t.fs.Stat(abs)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return tool.Result{}, err
		}
		if err != nil || info.IsDir() {
			return tool.Result{}, &ScriptNotFoundError{Path: *req.FilePath}
		}
		argv = append(argv, abs)
	} else {
		argv = append(argv, "-c", *req.Code)
	}

	res, err := t.commandExecutor.Run(ctx, executor.Request{
		Argv:    argv,
		Dir:     t.pathResolver.Root(),
		Env:     shell.ChildEnv(t.environ()),
		Timeout: timeout,
	})
	if err != nil {
		return tool.Result{}, err
	}
	return shell.ProcessResult(res), nil
}
