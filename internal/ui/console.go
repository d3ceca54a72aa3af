// Package ui is the line-oriented terminal front end: styled status lines,
// markdown rendering of model output and the workflow event handler.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/workflow"
	"github.com/Cyclone1070/offcode/internal/workflow/loop"
)

const defaultWidth = 100

// Console writes to a terminal. It also serves as the workflow event sink.
type Console struct {
	out      io.Writer
	renderer MarkdownRenderer
	width    int
}

// NewConsole creates a console. renderer may be nil to print raw text.
func NewConsole(out io.Writer, renderer MarkdownRenderer, width int) *Console {
	if width <= 0 {
		width = defaultWidth
	}
	return &Console{out: out, renderer: renderer, width: width}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) Info(msg string)    { c.println(InfoStyle.Render(msg)) }
func (c *Console) Success(msg string) { c.println(SuccessStyle.Render("✔ " + msg)) }
func (c *Console) Warning(msg string) { c.println(WarningStyle.Render("⚠ " + msg)) }
func (c *Console) Error(msg string)   { c.println(ErrorStyle.Render("✘ " + msg)) }

// Response prints model text as markdown, falling back to the raw text if
// rendering fails.
func (c *Console) Response(text string) {
	if c.renderer != nil {
		if out, err := c.renderer.Render(text, c.width-4); err == nil {
			fmt.Fprint(c.out, out)
			return
		}
	}
	c.println(text)
}

// Handle implements workflow.Sink.
func (c *Console) Handle(e workflow.Event) {
	switch ev := e.(type) {
	case workflow.ThinkingEvent:
		c.println(DimStyle.Render(fmt.Sprintf("Thinking... (iteration %d/%d)", ev.Iteration, ev.Budget)))
	case workflow.TextEvent:
		c.Response(ev.Text)
	case workflow.ToolStartEvent:
		c.println(ToolStyle.Render("→ " + DescribeCall(ev.Call)))
	case workflow.ToolEndEvent:
		if ev.Result.Success {
			c.Success(DescribeResult(ev.Result))
		} else {
			c.Error(fmt.Sprintf("%s: %s", ev.Result.Kind, ev.Result.Error))
		}
	case workflow.ToolSkippedEvent:
		c.Warning("Skipped " + DescribeCall(ev.Call))
	case workflow.DoneEvent:
		c.println(DimStyle.Render("Done: " + ev.Reason))
	}
}

// Results prints the end-of-turn banner, one line per call.
func (c *Console) Results(outcomes []loop.CallOutcome) {
	if len(outcomes) == 0 {
		return
	}
	c.println(TitleStyle.Render("Tool Results"))
	for i, o := range outcomes {
		prefix := fmt.Sprintf("%d. %s: ", i+1, o.Call.Name)
		switch {
		case o.Skipped:
			c.println(prefix + WarningStyle.Render("Skipped"))
		case o.Result.Success:
			c.println(prefix + SuccessStyle.Render("Success"))
		default:
			c.println(prefix + ErrorStyle.Render(o.Result.Error))
		}
	}
}

// Tools lists the tool declarations.
func (c *Console) Tools(decls []tool.Declaration) {
	c.println(TitleStyle.Render("Available tools"))
	for _, d := range decls {
		c.println(fmt.Sprintf("  %s  %s", ToolStyle.Render(d.Usage()), DimStyle.Render(d.Description)))
	}
}

// Rule prints a horizontal separator.
func (c *Console) Rule() {
	c.println(DimStyle.Render(strings.Repeat("─", c.width)))
}
