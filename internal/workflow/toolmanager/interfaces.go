package toolmanager

import (
	"context"
	"time"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// toolImpl is a registered tool operating on raw call arguments.
type toolImpl interface {
	// Declaration returns the tool's signature for the system prompt.
	Declaration() tool.Declaration

	// Execute decodes args and runs the tool.
	Execute(ctx context.Context, args tool.Args) (tool.Result, error)
}

// runner is a typed tool, as implemented in the tool packages.
type runner[P any] interface {
	Declaration() tool.Declaration
	Run(ctx context.Context, req P) (tool.Result, error)
}

// request constrains P to be a pointer to a validating request struct.
type request[R any] interface {
	*R
	Validate() error
}

// recorder receives one observation per executed call.
type recorder interface {
	ObserveToolCall(tool, kind string, d time.Duration)
}
