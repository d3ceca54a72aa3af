package toolmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/offcode/internal/config"
	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/tool/pathutil"
	"github.com/Cyclone1070/offcode/internal/workflow/callparser"
)

func newBuiltin(t *testing.T) *ToolManager {
	t.Helper()
	root, err := pathutil.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	return NewBuiltin(config.DefaultConfig(), root, nil, nil)
}

func TestBuiltin_Declarations(t *testing.T) {
	m := newBuiltin(t)

	assert.Equal(t, []string{
		"append_file",
		"create_directory",
		"execute_python",
		"list_directory",
		"read_file",
		"run_command",
		"write_file",
	}, m.Names())
}

func TestBuiltin_ArgumentErrors(t *testing.T) {
	m := newBuiltin(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call tool.Call
		want tool.Kind
	}{
		{"python non-numeric timeout", call("execute_python", "code", "print(1)", "timeout", "abc"), tool.KindInvalidArgument},
		{"python zero timeout", call("execute_python", "code", "print(1)", "timeout", "0"), tool.KindInvalidArgument},
		{"python without code or file", call("execute_python", "timeout", "1"), tool.KindInvalidArgument},
		{"command non-numeric timeout", call("run_command", "command", "ls", "timeout", "soon"), tool.KindInvalidArgument},
		{"curl not allowed", call("run_command", "command", "curl http://example.com"), tool.KindNotAllowed},
		{"git push not allowed", call("run_command", "command", "git push origin main"), tool.KindNotAllowed},
		{"write without content", call("write_file", "file_path", "a.txt"), tool.KindInvalidArgument},
		{"read outside sandbox", call("read_file", "file_path", "../../etc/passwd"), tool.KindDenied},
		{"read missing file", call("read_file", "file_path", "nope.txt"), tool.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.Execute(ctx, tt.call)
			assert.False(t, res.Success)
			assert.Equal(t, tt.want, res.Kind, res.Error)
		})
	}
}

func TestBuiltin_CreateDirectoryIdempotent(t *testing.T) {
	m := newBuiltin(t)
	ctx := context.Background()

	first := m.Execute(ctx, call("create_directory", "dir_path", "a/b"))
	second := m.Execute(ctx, call("create_directory", "dir_path", "a/b"))

	assert.True(t, first.Success, first.Error)
	assert.True(t, second.Success, second.Error)
}

func TestBuiltin_WriteNoneContentLiterally(t *testing.T) {
	tests := []struct {
		name string
		call tool.Call
		want string
	}{
		{"quoted None", callparser.Parse("[TOOL: write_file(file_path='x.txt', content='None')]")[0], "None"},
		{"triple quoted none", callparser.Parse("[TOOL: write_file(file_path='x.txt', content='''none''')]")[0], "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newBuiltin(t)
			ctx := context.Background()

			written := m.Execute(ctx, tt.call)
			require.True(t, written.Success, written.Error)

			read := m.Execute(ctx, call("read_file", "file_path", "x.txt"))
			require.True(t, read.Success, read.Error)
			assert.Equal(t, tt.want, read.Content)
		})
	}
}
