// Package confirm gates each parsed tool call behind an optional yes/no
// approval.
package confirm

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// Prompter asks the user a yes/no question. def is the answer taken when the
// user just presses enter.
type Prompter interface {
	Ask(ctx context.Context, question string, def bool) (bool, error)
}

// Gate decides whether a call may execute.
type Gate struct {
	auto     bool
	prompter Prompter
}

// NewGate creates a gate. A nil prompter approves every call, as does auto
// mode.
func NewGate(prompter Prompter, auto bool) *Gate {
	return &Gate{auto: auto, prompter: prompter}
}

func (g *Gate) Auto() bool {
	return g.auto
}

func (g *Gate) SetAuto(auto bool) {
	g.auto = auto
}

// Confirm returns true when the call is approved. The prompt defaults to yes.
func (g *Gate) Confirm(ctx context.Context, call tool.Call) (bool, error) {
	if g.auto || g.prompter == nil {
		return true, nil
	}
	ok, err := g.prompter.Ask(ctx, fmt.Sprintf("Execute %s?", call), true)
	if err != nil {
		return false, fmt.Errorf("confirm %s: %w", call.Name, err)
	}
	return ok, nil
}
