package ui

import (
	"fmt"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// primaryArg names the argument that best identifies a call for display.
var primaryArg = map[string]string{
	"read_file":        "file_path",
	"write_file":       "file_path",
	"append_file":      "file_path",
	"list_directory":   "dir_path",
	"create_directory": "dir_path",
	"run_command":      "command",
	"execute_python":   "file_path",
}

// DescribeCall produces a short label such as "read_file main.go".
func DescribeCall(call tool.Call) string {
	if key, ok := primaryArg[call.Name]; ok {
		if v, ok := call.Args.Get(key); ok && !tool.IsNone(v) {
			if call.Name == "run_command" {
				return fmt.Sprintf("%s '%s'", call.Name, v)
			}
			return fmt.Sprintf("%s %s", call.Name, v)
		}
	}
	if call.Name == "execute_python" {
		return "execute_python <inline code>"
	}
	return call.Name
}

// DescribeResult summarises a successful result in one line.
func DescribeResult(res tool.Result) string {
	switch res.Output {
	case tool.OutputContent:
		return fmt.Sprintf("%s (%d lines)", res.Message, res.Lines)
	case tool.OutputEntries:
		return res.Message
	case tool.OutputProcess:
		if res.Truncated {
			return res.Message + " (output truncated)"
		}
		return res.Message
	}
	return res.Message
}
