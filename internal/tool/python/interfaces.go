package python

import (
	"context"
	"os"

	"github.com/Cyclone1070/offcode/internal/tool/service/executor"
)

type pathResolver interface {
	Root() string
	Resolve(path string) (string, error)
	Rel(abs string) string
}

type statter interface {
	Stat(path string) (os.FileInfo, error)
}

type commandExecutor interface {
	Run(ctx context.Context, req executor.Request) (*executor.Result, error)
}
