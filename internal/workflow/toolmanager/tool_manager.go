package toolmanager

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// ToolManager is the registry of tools. It is the failure boundary for tool
// execution: every call, including calls to unknown tools and calls that
// panic, yields a Result and a history entry.
type ToolManager struct {
	registry map[string]toolImpl
	history  []tool.HistoryEntry
	logger   *zap.Logger
	metrics  recorder
	now      func() time.Time
}

// NewToolManager builds a registry. metrics may be nil.
func NewToolManager(logger *zap.Logger, metrics recorder, tools ...toolImpl) *ToolManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	tm := &ToolManager{
		registry: make(map[string]toolImpl),
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
	for _, t := range tools {
		tm.Register(t)
	}
	return tm
}

func (m *ToolManager) Register(t toolImpl) {
	m.registry[t.Declaration().Name] = t
}

func (m *ToolManager) Declarations() []tool.Declaration {
	decls := make([]tool.Declaration, 0, len(m.registry))
	for _, t := range m.registry {
		decls = append(decls, t.Declaration())
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})
	return decls
}

// Names returns the registered tool names in sorted order.
func (m *ToolManager) Names() []string {
	names := make([]string, 0, len(m.registry))
	for name := range m.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs one call and records it.
func (m *ToolManager) Execute(ctx context.Context, call tool.Call) tool.Result {
	if call.ID == "" {
		call.ID = uuid.NewString()
	}
	start := m.now()
	res := m.Invoke(ctx, call)
	elapsed := m.now().Sub(start)

	m.history = append(m.history, tool.HistoryEntry{
		ID:        call.ID,
		Tool:      call.Name,
		Arguments: append(tool.Args(nil), call.Args...),
		Result:    res,
		Timestamp: start,
	})

	fields := []zap.Field{
		zap.String("tool", call.Name),
		zap.String("call_id", call.ID),
		zap.Bool("success", res.Success),
		zap.Duration("duration", elapsed),
	}
	if res.Success {
		m.logger.Info("tool call", fields...)
	} else {
		m.logger.Warn("tool call", append(fields, zap.String("kind", string(res.Kind)), zap.String("error", res.Error))...)
	}
	if m.metrics != nil {
		m.metrics.ObserveToolCall(call.Name, string(res.Kind), elapsed)
	}
	return res
}

// Invoke runs one call without recording it in the history, the audit log
// or the metrics. It is for reads the assistant makes on its own behalf.
func (m *ToolManager) Invoke(ctx context.Context, call tool.Call) tool.Result {
	t, ok := m.registry[call.Name]
	if !ok {
		return tool.Failure(&tool.UnknownToolError{Name: call.Name, Available: m.Names()})
	}
	return m.run(ctx, t, call)
}

// run executes t, converting errors and panics into failed results.
func (m *ToolManager) run(ctx context.Context, t toolImpl, call tool.Call) (res tool.Result) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("tool panicked", zap.String("tool", call.Name), zap.Any("panic", r), zap.Stack("stack"))
			res = tool.Fail(tool.KindExecutionError, fmt.Sprintf("internal error in %s: %v", call.Name, r))
		}
	}()

	res, err := t.Execute(ctx, call.Args)
	if err != nil {
		return tool.Failure(err)
	}
	return res
}

// History returns a copy of the execution history in call order.
func (m *ToolManager) History() []tool.HistoryEntry {
	out := make([]tool.HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}
