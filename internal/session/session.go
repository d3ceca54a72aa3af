// Package session is the interactive front of offcode: it owns the
// conversation and the pinned context files, and routes REPL input either to
// a built-in command or to the orchestration loop.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/Cyclone1070/offcode/internal/tool"
	"github.com/Cyclone1070/offcode/internal/workflow"
	"github.com/Cyclone1070/offcode/internal/workflow/loop"
	"github.com/Cyclone1070/offcode/internal/workflow/prompt"
)

const helpText = `Commands:
  /add <file>     add a file to the context
  /remove <file>  remove a file from the context
  /list           list context files
  /clear          clear context files and conversation history
  /tools          list available tools
  /auto           toggle auto-confirm of tool calls
  /help           show this help
  quit, exit, q   leave the session`

type Session struct {
	ID string

	loop    runner
	tools   registry
	auto    autoToggle
	console console
	logger  *zap.Logger

	conv  workflow.Conversation
	files []string
}

// New creates a session. auto may be nil when there is no confirmation gate
// to toggle.
func New(id string, l runner, tools registry, auto autoToggle, c console, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{ID: id, loop: l, tools: tools, auto: auto, console: c, logger: logger}
}

// Files returns the pinned context files in insertion order.
func (s *Session) Files() []string {
	return slices.Clone(s.files)
}

func (s *Session) Conversation() *workflow.Conversation {
	return &s.conv
}

// Ask runs one user turn through the loop and prints the results banner.
func (s *Session) Ask(ctx context.Context, input string) (loop.Outcome, error) {
	s.logger.Debug("user turn", zap.String("session", s.ID), zap.Int("context_files", len(s.files)))
	out, err := s.loop.Run(ctx, &s.conv, func() string { return s.SystemPrompt(ctx) }, input)
	s.console.Results(out.Results)
	if err != nil {
		s.console.Error(err.Error())
	}
	return out, err
}

// SystemPrompt re-reads every context file through read_file, so the
// sandbox applies and edits made by tools show up on the next generation.
// Files that can no longer be read are left out.
func (s *Session) SystemPrompt(ctx context.Context) string {
	files := make([]prompt.ContextFile, 0, len(s.files))
	for _, path := range s.files {
		res := s.readFile(ctx, path)
		if !res.Success {
			s.logger.Warn("context file unreadable", zap.String("path", path), zap.String("error", res.Error))
			continue
		}
		files = append(files, prompt.ContextFile{Path: path, Content: res.Content})
	}
	return prompt.Build(s.tools.Declarations(), files)
}

// readFile loads a context file. These reads are not model calls, so they
// stay out of the tool history.
func (s *Session) readFile(ctx context.Context, path string) tool.Result {
	return s.tools.Invoke(ctx, tool.Call{
		Name: "read_file",
		Args: tool.Args{{Key: "file_path", Value: path}},
	})
}

// Handle processes one input line. It reports quit when the user asks to
// leave. Errors from the loop are already shown and are not returned.
func (s *Session) Handle(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		s.console.Info("Goodbye!")
		return true
	case "help":
		s.console.Info(helpText)
		return false
	case "tools":
		s.console.Tools(s.tools.Declarations())
		return false
	case "auto":
		s.toggleAuto()
		return false
	}

	if strings.HasPrefix(line, "/") {
		s.command(ctx, line)
		return false
	}

	_, _ = s.Ask(ctx, line)
	return false
}

func (s *Session) command(ctx context.Context, line string) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "/add":
		s.add(ctx, arg)
	case "/remove":
		s.remove(arg)
	case "/list":
		if len(s.files) == 0 {
			s.console.Info("No files in context.")
			return
		}
		s.console.Info("Context files:\n  " + strings.Join(s.files, "\n  "))
	case "/clear":
		s.files = nil
		s.conv.Clear()
		s.console.Success("Cleared context files and conversation history")
	case "/tools":
		s.console.Tools(s.tools.Declarations())
	case "/auto":
		s.toggleAuto()
	case "/help":
		s.console.Info(helpText)
	default:
		s.console.Warning(fmt.Sprintf("Unknown command %s. Type /help for commands.", name))
	}
}

func (s *Session) add(ctx context.Context, path string) {
	if path == "" {
		s.console.Warning("Usage: /add <file>")
		return
	}
	if slices.Contains(s.files, path) {
		s.console.Info(path + " is already in context")
		return
	}
	res := s.readFile(ctx, path)
	if !res.Success {
		s.console.Error(fmt.Sprintf("Cannot add %s: %s", path, res.Error))
		return
	}
	s.files = append(s.files, path)
	s.console.Success(fmt.Sprintf("Added %s to context (%d lines)", path, res.Lines))
}

func (s *Session) remove(path string) {
	i := slices.Index(s.files, path)
	if i < 0 {
		s.console.Warning(path + " is not in context")
		return
	}
	s.files = slices.Delete(s.files, i, i+1)
	s.console.Success("Removed " + path + " from context")
}

func (s *Session) toggleAuto() {
	if s.auto == nil {
		s.console.Warning("Auto-confirm is not available")
		return
	}
	s.auto.SetAuto(!s.auto.Auto())
	state := "disabled"
	if s.auto.Auto() {
		state = "enabled"
	}
	s.console.Info("Auto-confirm " + state)
}

// Interactive reads lines from in until EOF, quit or ctx is done. promptOut
// receives the input prompt.
func (s *Session) Interactive(ctx context.Context, in io.Reader, promptOut io.Writer) error {
	s.console.Info("offcode interactive mode. Type 'help' for commands, 'quit' to exit.")
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(promptOut, "You: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}
		if s.Handle(ctx, scanner.Text()) {
			return nil
		}
	}
}
