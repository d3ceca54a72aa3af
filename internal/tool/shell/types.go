package shell

import (
	"strings"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// RunCommandRequest is the argument set of run_command. Timeout is decoded
// from either a number or a numeric string.
type RunCommandRequest struct {
	Command string   `mapstructure:"command"`
	Timeout *float64 `mapstructure:"timeout"`
	Cwd     *string  `mapstructure:"cwd"`
	Input   *string  `mapstructure:"input"`
}

func (r *RunCommandRequest) Validate() error {
	if strings.TrimSpace(r.Command) == "" {
		return tool.MissingArgument("command")
	}
	r.Cwd = tool.Optional(r.Cwd)
	r.Input = tool.Optional(r.Input)
	return nil
}
