package session

import (
	"context"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/workflow"
	"github.com/Cyclone1070/offcode/internal/workflow/loop"
)

type runner interface {
	Run(ctx context.Context, conv *workflow.Conversation, system func() string, input string) (loop.Outcome, error)
}

type registry interface {
	Declarations() []tool.Declaration
	Execute(ctx context.Context, call tool.Call) tool.Result
	Invoke(ctx context.Context, call tool.Call) tool.Result
}

type autoToggle interface {
	Auto() bool
	SetAuto(bool)
}

type console interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
	Results(outcomes []loop.CallOutcome)
	Tools(decls []tool.Declaration)
}
