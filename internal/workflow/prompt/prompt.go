// Package prompt builds the system prompt sent at the head of every
// generation.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// ContextFile is a file the user pinned into the conversation.
type ContextFile struct {
	Path    string
	Content string
}

const syntax = `To execute a tool, write the call on its own line in this exact format:
[TOOL: tool_name(key='value', other='value')]

For multi-line content, wrap the value in triple quotes:
[TOOL: write_file(file_path='hello.py', content='''def main():
    print("hello")
''')]

Examples:
- [TOOL: read_file(file_path='example.py')]
- [TOOL: write_file(file_path='test.py', content='print("Hello")')]
- [TOOL: execute_python(code='print("Hello")')]
- [TOOL: execute_python(file_path='example.py', timeout=10)]
- [TOOL: create_directory(dir_path='new_folder')]
- [TOOL: list_directory(dir_path='.', pattern='*.py')]
- [TOOL: run_command(command='git status')]`

const rules = `IMPORTANT GUIDELINES:
1. Use tools immediately instead of asking the user for content.
2. DO NOT ask for confirmation. The system handles that.
3. When a file's content has been returned to you, DO NOT read it again.
4. Always write the complete file content. Never write placeholders or summaries.
5. Tool results come back in the next message. When the task is done, answer without any tool call.`

// Build assembles the system prompt from the tool declarations and the
// pinned context files.
func Build(decls []tool.Declaration, files []ContextFile) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI assistant that works on the user's project by executing tools.\n\n")

	b.WriteString("Available tools:\n")
	for _, d := range decls {
		fmt.Fprintf(&b, "- %s: %s\n", d.Usage(), d.Description)
	}
	b.WriteString("\n")
	b.WriteString(syntax)
	b.WriteString("\n\n")

	b.WriteString("Context:")
	if len(files) == 0 {
		b.WriteString(" No files in context.\n")
	} else {
		b.WriteString("\n")
		for _, f := range files {
			b.WriteString(FileBlock(f.Path, f.Content))
		}
	}
	b.WriteString("\n")
	b.WriteString(rules)
	return b.String()
}

// FileBlock wraps content in the file markers.
func FileBlock(path, content string) string {
	return fmt.Sprintf("\n--- File: %s ---\n%s\n--- End of File ---\n", path, content)
}
