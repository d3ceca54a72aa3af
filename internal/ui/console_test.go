package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/workflow"
	"github.com/Cyclone1070/offcode/internal/workflow/loop"
)

type MockMarkdownRenderer struct {
	err   error
	width int
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	m.width = width
	if m.err != nil {
		return "", m.err
	}
	return "<md>" + content + "</md>\n", nil
}

func TestConsole_Response(t *testing.T) {
	t.Run("rendered", func(t *testing.T) {
		var buf bytes.Buffer
		r := &MockMarkdownRenderer{}
		NewConsole(&buf, r, 80).Response("# hi")

		assert.Equal(t, "<md># hi</md>\n", buf.String())
		assert.Equal(t, 76, r.width)
	})

	t.Run("falls back to raw text", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, &MockMarkdownRenderer{err: errors.New("bad style")}, 80).Response("# hi")

		assert.Equal(t, "# hi\n", buf.String())
	})
}

func TestConsole_Handle(t *testing.T) {
	read := tool.Call{Name: "read_file", Args: tool.Args{{Key: "file_path", Value: "main.go"}}}

	tests := []struct {
		name  string
		event workflow.Event
		want  string
	}{
		{"thinking", workflow.ThinkingEvent{Iteration: 2, Budget: 5}, "iteration 2/5"},
		{"text", workflow.TextEvent{Text: "hello"}, "<md>hello</md>"},
		{"start", workflow.ToolStartEvent{Call: read}, "read_file main.go"},
		{"end ok", workflow.ToolEndEvent{Call: read, Result: tool.Result{Success: true, Output: tool.OutputContent, Message: "Read 5 characters from main.go", Lines: 1}}, "Read 5 characters from main.go (1 lines)"},
		{"end failed", workflow.ToolEndEvent{Call: read, Result: tool.Fail(tool.KindNotFound, "file not found: main.go")}, "NotFound: file not found: main.go"},
		{"skipped", workflow.ToolSkippedEvent{Call: read}, "Skipped read_file main.go"},
		{"done", workflow.DoneEvent{Reason: "no tool calls"}, "Done: no tool calls"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewConsole(&buf, &MockMarkdownRenderer{}, 80).Handle(tt.event)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestConsole_Results(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, nil, 80)

	c.Results([]loop.CallOutcome{
		{Call: tool.Call{Name: "create_directory"}, Result: tool.Succeed("Created directory a")},
		{Call: tool.Call{Name: "run_command"}, Skipped: true},
		{Call: tool.Call{Name: "read_file"}, Result: tool.Fail(tool.KindDenied, "path escapes sandbox")},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "1. create_directory: ")
	assert.Contains(t, lines[1], "Success")
	assert.Contains(t, lines[2], "Skipped")
	assert.Contains(t, lines[3], "path escapes sandbox")
}

func TestConsole_ResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, nil, 80).Results(nil)
	assert.Empty(t, buf.String())
}

func TestDescribeCall(t *testing.T) {
	tests := []struct {
		call tool.Call
		want string
	}{
		{tool.Call{Name: "run_command", Args: tool.Args{{Key: "command", Value: "git status"}}}, "run_command 'git status'"},
		{tool.Call{Name: "execute_python", Args: tool.Args{{Key: "code", Value: "print(1)"}}}, "execute_python <inline code>"},
		{tool.Call{Name: "execute_python", Args: tool.Args{{Key: "file_path", Value: "None"}, {Key: "code", Value: "x"}}}, "execute_python <inline code>"},
		{tool.Call{Name: "create_directory", Args: tool.Args{{Key: "dir_path", Value: "a/b"}}}, "create_directory a/b"},
		{tool.Call{Name: "mystery"}, "mystery"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DescribeCall(tt.call))
	}
}
