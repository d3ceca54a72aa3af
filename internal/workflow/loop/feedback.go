package loop

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Cyclone1070/offcode/internal/tool"
)

// Feedback renders one batch of call outcomes as the user message that
// starts the next generation.
func Feedback(outcomes []CallOutcome, opts Options) string {
	var b strings.Builder
	b.WriteString("Tool execution results:\n")
	for i, o := range outcomes {
		fmt.Fprintf(&b, "\n[%d] %s\n", i+1, o.Call)
		b.WriteString(describe(o, opts))
		b.WriteString("\n")
	}
	b.WriteString("\nContinue with the task using these results. If the task is complete, reply without any tool call.")
	return b.String()
}

func describe(o CallOutcome, opts Options) string {
	if o.Skipped {
		return "Skipped: the user declined this call."
	}
	res := o.Result
	if !res.Success {
		s := fmt.Sprintf("Failed (%s): %s", res.Kind, res.Error)
		if res.Output == tool.OutputProcess && res.Stdout != "" {
			s += "\nstdout:\n" + res.Stdout
		}
		return s
	}

	if o.Call.Name == "write_file" && res.BytesWritten != nil && *res.BytesWritten < opts.PlaceholderThreshold {
		return fmt.Sprintf("WARNING: only %d characters were written to %s. This looks like placeholder content. "+
			"Rewrite the file with its COMPLETE content in a single write_file call.", *res.BytesWritten, res.Path)
	}

	switch res.Output {
	case tool.OutputContent:
		return fmt.Sprintf("Content of %s (%d characters, %d lines). You now have this content; DO NOT read this file again.\n%s",
			res.Path, res.Chars, res.Lines, truncate(res.Content, opts.ReadFeedbackLimit))
	case tool.OutputProcess:
		s := fmt.Sprintf("Exit status %d\nstdout:\n%s", res.ExitCode, res.Stdout)
		if res.Stderr != "" {
			s += "\nstderr:\n" + res.Stderr
		}
		if res.Truncated {
			s += "\n[output truncated]"
		}
		return s
	case tool.OutputEntries:
		if len(res.Entries) == 0 {
			return fmt.Sprintf("%s is empty.", res.Path)
		}
		return fmt.Sprintf("%s\n%s", res.Message, strings.Join(res.Entries, "\n"))
	default:
		return res.Message
	}
}

// truncate cuts s to limit runes, noting the original size. A limit below one
// disables truncation.
func truncate(s string, limit int) string {
	n := utf8.RuneCountInString(s)
	if limit < 1 || n <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + fmt.Sprintf("\n... [truncated, original size %d characters]", n)
}
