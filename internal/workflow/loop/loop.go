// Package loop drives the bounded generate, parse, execute and feedback
// cycle for one user turn.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cyclone1070/offcode/internal/provider"
	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/workflow"
	"github.com/Cyclone1070/offcode/internal/workflow/callparser"
)

// State is the loop's position in the cycle.
type State int

const (
	StateGenerating State = iota
	StateParsing
	StateAwaitingConfirmation
	StateExecuting
	StateFeedback
	StateDone
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateParsing:
		return "parsing"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	case StateExecuting:
		return "executing"
	case StateFeedback:
		return "feedback"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Reasons a turn ends.
const (
	ReasonNoCalls   = "no tool calls"
	ReasonExhausted = "iteration budget exhausted"
	ReasonError     = "error"
)

type Options struct {
	MaxIterations        int
	HistoryWindow        int
	PlaceholderThreshold int
	ReadFeedbackLimit    int
	Params               provider.Params
}

// CallOutcome pairs a parsed call with what happened to it.
type CallOutcome struct {
	Call    tool.Call
	Result  tool.Result
	Skipped bool
}

// Outcome summarises one turn.
type Outcome struct {
	Iterations int
	Results    []CallOutcome
	Final      string
	Reason     string
}

type Loop struct {
	completer completer
	tools     toolManager
	gate      gate
	sink      workflow.Sink
	logger    *zap.Logger
	metrics   recorder
	opts      Options
	state     State
}

// NewLoop creates a loop. sink, logger and metrics may be nil.
func NewLoop(c completer, tools toolManager, g gate, sink workflow.Sink, logger *zap.Logger, metrics recorder, opts Options) *Loop {
	if opts.MaxIterations < 1 {
		opts.MaxIterations = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		completer: c,
		tools:     tools,
		gate:      g,
		sink:      sink,
		logger:    logger,
		metrics:   metrics,
		opts:      opts,
		state:     StateDone,
	}
}

// State reports where the loop currently is.
func (l *Loop) State() State {
	return l.state
}

// Run appends input to conv and iterates until a generation contains no
// calls or the budget is spent. system is called before every generation so
// context files are re-read each time. A completion or confirmation error
// ends the turn and is returned with the partial outcome.
func (l *Loop) Run(ctx context.Context, conv *workflow.Conversation, system func() string, input string) (Outcome, error) {
	conv.Append(provider.RoleUser, input)

	var out Outcome
	for out.Iterations < l.opts.MaxIterations {
		out.Iterations++
		if l.metrics != nil {
			l.metrics.ObserveIteration()
		}

		l.state = StateGenerating
		l.emit(workflow.ThinkingEvent{Iteration: out.Iterations, Budget: l.opts.MaxIterations})
		text, err := l.generate(ctx, conv, system)
		if err != nil {
			l.finish(&out, ReasonError)
			return out, fmt.Errorf("generate (iteration %d): %w", out.Iterations, err)
		}
		conv.Append(provider.RoleAssistant, text)
		out.Final = text
		l.emit(workflow.TextEvent{Text: text})

		l.state = StateParsing
		calls := callparser.Parse(text)
		l.logger.Debug("parsed generation",
			zap.Int("iteration", out.Iterations),
			zap.Int("calls", len(calls)))
		if len(calls) == 0 {
			l.finish(&out, ReasonNoCalls)
			return out, nil
		}

		batch, err := l.dispatch(ctx, calls)
		out.Results = append(out.Results, batch...)
		if err != nil {
			l.finish(&out, ReasonError)
			return out, err
		}

		if out.Iterations >= l.opts.MaxIterations {
			break
		}
		l.state = StateFeedback
		conv.Append(provider.RoleUser, Feedback(batch, l.opts))
	}

	l.finish(&out, ReasonExhausted)
	return out, nil
}

func (l *Loop) generate(ctx context.Context, conv *workflow.Conversation, system func() string) (string, error) {
	messages := []provider.Message{{Role: provider.RoleSystem, Content: system()}}
	messages = append(messages, conv.Window(l.opts.HistoryWindow)...)

	start := time.Now()
	text, err := l.completer.Complete(ctx, messages, l.opts.Params)
	if l.metrics != nil {
		l.metrics.ObserveGeneration(time.Since(start), err)
	}
	return text, err
}

// dispatch runs calls strictly in order, one at a time.
func (l *Loop) dispatch(ctx context.Context, calls []tool.Call) ([]CallOutcome, error) {
	outcomes := make([]CallOutcome, 0, len(calls))
	for _, call := range calls {
		if call.ID == "" {
			call.ID = uuid.NewString()
		}

		l.state = StateAwaitingConfirmation
		ok, err := l.gate.Confirm(ctx, call)
		if err != nil {
			return outcomes, err
		}
		if !ok {
			l.logger.Info("tool call skipped", zap.String("tool", call.Name), zap.String("call_id", call.ID))
			if l.metrics != nil {
				l.metrics.ObserveSkipped(call.Name)
			}
			l.emit(workflow.ToolSkippedEvent{Call: call})
			outcomes = append(outcomes, CallOutcome{Call: call, Skipped: true})
			continue
		}

		l.state = StateExecuting
		l.emit(workflow.ToolStartEvent{Call: call})
		res := l.tools.Execute(ctx, call)
		l.emit(workflow.ToolEndEvent{Call: call, Result: res})
		outcomes = append(outcomes, CallOutcome{Call: call, Result: res})
	}
	return outcomes, nil
}

func (l *Loop) finish(out *Outcome, reason string) {
	out.Reason = reason
	l.state = StateDone
	l.emit(workflow.DoneEvent{Reason: reason})
}

func (l *Loop) emit(e workflow.Event) {
	if l.sink != nil {
		l.sink.Handle(e)
	}
}
