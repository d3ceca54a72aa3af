package shell

import (
	"context"
	"os"

	"github.com/Cyclone1070/offcode/internal/tool/service/executor"
)

// pathResolver confines the working directory to the sandbox.
type pathResolver interface {
	Root() string
	Resolve(path string) (string, error)
	Rel(abs string) string
}

// statter reports whether the working directory exists.
type statter interface {
	Stat(path string) (os.FileInfo, error)
}

// commandExecutor runs a child process.
type commandExecutor interface {
	Run(ctx context.Context, req executor.Request) (*executor.Result, error)
}
