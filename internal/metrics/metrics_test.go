package metrics

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveToolCall("read_file", "", 10*time.Millisecond)
	m.ObserveToolCall("read_file", "NotFound", time.Millisecond)
	m.ObserveToolCall("read_file", "", time.Millisecond)
	m.ObserveSkipped("run_command")
	m.ObserveIteration()
	m.ObserveIteration()
	m.ObserveGeneration(time.Second, nil)
	m.ObserveGeneration(time.Second, errors.New("boom"))

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))
	out := buf.String()

	assert.Contains(t, out, `offcode_tool_calls_total{kind="ok",tool="read_file"} 2`)
	assert.Contains(t, out, `offcode_tool_calls_total{kind="NotFound",tool="read_file"} 1`)
	assert.Contains(t, out, `offcode_tool_duration_seconds_count{tool="read_file"} 3`)
	assert.Contains(t, out, `offcode_tool_calls_skipped_total{tool="run_command"} 1`)
	assert.Contains(t, out, "offcode_loop_iterations_total 2")
	assert.Contains(t, out, `offcode_generations_total{status="error"} 1`)
	assert.Contains(t, out, `offcode_generations_total{status="ok"} 1`)
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveIteration()
	path := filepath.Join(t.TempDir(), "offcode.prom")

	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# TYPE offcode_loop_iterations_total counter")
	assert.Contains(t, string(data), "offcode_loop_iterations_total 1")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be renamed away")
}

func TestRegistry_Gather(t *testing.T) {
	m := New()
	m.ObserveToolCall("write_file", "", time.Millisecond)
	m.ObserveSkipped("write_file")
	m.ObserveIteration()
	m.ObserveGeneration(time.Second, nil)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Equal(t, []string{
		"offcode_generation_duration_seconds",
		"offcode_generations_total",
		"offcode_loop_iterations_total",
		"offcode_tool_calls_skipped_total",
		"offcode_tool_calls_total",
		"offcode_tool_duration_seconds",
	}, names)
}
