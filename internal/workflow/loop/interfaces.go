package loop

import (
	"context"
	"time"

	"github.com/Cyclone1070/offcode/internal/provider"
	"github.com/Cyclone1070/offcode/internal/tool"
)

// completer produces the next model turn.
type completer interface {
	Complete(ctx context.Context, messages []provider.Message, params provider.Params) (string, error)
}

// toolManager executes parsed calls. Execute never fails; failures come back
// as results.
type toolManager interface {
	Declarations() []tool.Declaration
	Execute(ctx context.Context, call tool.Call) tool.Result
}

// gate approves or declines each call before it runs.
type gate interface {
	Confirm(ctx context.Context, call tool.Call) (bool, error)
}

type recorder interface {
	ObserveIteration()
	ObserveGeneration(d time.Duration, err error)
	ObserveSkipped(tool string)
}
