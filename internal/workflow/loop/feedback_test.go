package loop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cyclone1070/offcode/internal/tool"
)

func written(n int) *int { return &n }

func TestFeedback_PlaceholderThreshold(t *testing.T) {
	opts := defaultOptions(5)
	call := tool.Call{Name: "write_file", Args: tool.Args{{Key: "file_path", Value: "main.py"}}}

	tests := []struct {
		name    string
		written int
		warn    bool
	}{
		{"29 characters", 29, true},
		{"50 characters", 50, true},
		{"150 characters", 150, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tool.Result{Success: true, Message: "Wrote", BytesWritten: written(tt.written), Path: "main.py"}

			got := Feedback([]CallOutcome{{Call: call, Result: res}}, opts)

			assert.Equal(t, tt.warn, strings.Contains(got, "placeholder"))
			assert.Equal(t, tt.warn, strings.Contains(got, "COMPLETE content"))
		})
	}
}

func TestFeedback_ReadContent(t *testing.T) {
	opts := defaultOptions(5)
	opts.ReadFeedbackLimit = 10
	call := tool.Call{Name: "read_file"}

	t.Run("short content included whole", func(t *testing.T) {
		res := tool.Result{Success: true, Output: tool.OutputContent, Content: "hello", Chars: 5, Lines: 1, Path: "a.txt"}

		got := Feedback([]CallOutcome{{Call: call, Result: res}}, opts)

		assert.Contains(t, got, "DO NOT read this file again")
		assert.Contains(t, got, "\nhello\n")
		assert.NotContains(t, got, "truncated")
	})

	t.Run("long content truncated", func(t *testing.T) {
		body := strings.Repeat("é", 25)
		res := tool.Result{Success: true, Output: tool.OutputContent, Content: body, Chars: 25, Lines: 1, Path: "a.txt"}

		got := Feedback([]CallOutcome{{Call: call, Result: res}}, opts)

		assert.Contains(t, got, strings.Repeat("é", 10)+"\n... [truncated, original size 25 characters]")
		assert.NotContains(t, got, strings.Repeat("é", 11))
	})
}

func TestFeedback_Kinds(t *testing.T) {
	opts := defaultOptions(5)

	tests := []struct {
		name    string
		outcome CallOutcome
		want    []string
	}{
		{
			name: "process output",
			outcome: CallOutcome{Call: tool.Call{Name: "execute_python"}, Result: tool.Result{
				Success: true, Output: tool.OutputProcess, Stdout: "hi\n", Stderr: "warn",
			}},
			want: []string{"Exit status 0", "stdout:\nhi\n", "stderr:\nwarn"},
		},
		{
			name: "entries",
			outcome: CallOutcome{Call: tool.Call{Name: "list_directory"}, Result: tool.Result{
				Success: true, Output: tool.OutputEntries, Message: "Found 2 entries in .", Entries: []string{"a.txt", "b/"}, Path: ".",
			}},
			want: []string{"Found 2 entries in .\na.txt\nb/"},
		},
		{
			name:    "message",
			outcome: CallOutcome{Call: tool.Call{Name: "create_directory"}, Result: tool.Succeed("Created directory a")},
			want:    []string{"Created directory a"},
		},
		{
			name:    "failure",
			outcome: CallOutcome{Call: tool.Call{Name: "read_file"}, Result: tool.Fail(tool.KindNotFound, "file not found: x")},
			want:    []string{"Failed (NotFound): file not found: x"},
		},
		{
			name: "failed process keeps stdout",
			outcome: CallOutcome{Call: tool.Call{Name: "run_command"}, Result: tool.Result{
				Kind: tool.KindExecutionError, Error: "exit status 1", Output: tool.OutputProcess, Stdout: "partial",
			}},
			want: []string{"Failed (ExecutionError): exit status 1", "stdout:\npartial"},
		},
		{
			name:    "skipped",
			outcome: CallOutcome{Call: tool.Call{Name: "run_command"}, Skipped: true},
			want:    []string{"Skipped: the user declined this call."},
		},
		{
			name: "append is never a placeholder",
			outcome: CallOutcome{Call: tool.Call{Name: "append_file"}, Result: tool.Result{
				Success: true, Message: "Appended 3 characters to a", BytesWritten: written(3),
			}},
			want: []string{"Appended 3 characters to a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Feedback([]CallOutcome{tt.outcome}, opts)
			assert.True(t, strings.HasPrefix(got, "Tool execution results:\n"))
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}
