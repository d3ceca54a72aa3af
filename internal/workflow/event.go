package workflow

import "github.com/Cyclone1070/offcode/internal/tool"

// Event is the interface for all workflow events.
// UI handles events via type switch.
type Event interface {
	isEvent()
}

// ThinkingEvent is emitted before each completion request.
type ThinkingEvent struct {
	Iteration int
	Budget    int
}

func (ThinkingEvent) isEvent() {}

// TextEvent is emitted when the model produces a completion.
type TextEvent struct {
	Text string
}

func (TextEvent) isEvent() {}

// ToolStartEvent is emitted when a call is about to execute.
type ToolStartEvent struct {
	Call tool.Call
}

func (ToolStartEvent) isEvent() {}

// ToolEndEvent is emitted when a call has executed.
type ToolEndEvent struct {
	Call   tool.Call
	Result tool.Result
}

func (ToolEndEvent) isEvent() {}

// ToolSkippedEvent is emitted when the user declines a call.
type ToolSkippedEvent struct {
	Call tool.Call
}

func (ToolSkippedEvent) isEvent() {}

// DoneEvent is emitted when the workflow loop completes.
type DoneEvent struct {
	Reason string
}

func (DoneEvent) isEvent() {}

// Sink receives events synchronously, on the loop's goroutine.
type Sink interface {
	Handle(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Handle(e Event) { f(e) }
