package confirm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user interrupts the prompt.
var ErrAborted = errors.New("confirmation aborted")

type keyMap struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
	Abort  key.Binding
}

var keys = keyMap{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "default")),
	Abort:  key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "abort")),
}

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// model is a single-question bubbletea program.
type model struct {
	question string
	def      bool

	answered bool
	answer   bool
	aborted  bool
}

func newModel(question string, def bool) model {
	return model{question: question, def: def}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, keys.Abort):
		m.aborted = true
	case key.Matches(k, keys.Yes):
		m.answered, m.answer = true, true
	case key.Matches(k, keys.No):
		m.answered, m.answer = true, false
	case key.Matches(k, keys.Accept):
		m.answered, m.answer = true, m.def
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m model) View() string {
	if m.answered || m.aborted {
		return ""
	}
	hint := "[y/N]"
	if m.def {
		hint = "[Y/n]"
	}
	return questionStyle.Render(m.question) + " " + hintStyle.Render(hint) + "\n"
}

// TerminalPrompter asks questions with a short-lived bubbletea program per
// question.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

func (p *TerminalPrompter) Ask(ctx context.Context, question string, def bool) (bool, error) {
	prog := tea.NewProgram(
		newModel(question, def),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return false, ErrAborted
		}
		return false, fmt.Errorf("run prompt: %w", err)
	}
	m, ok := final.(model)
	if !ok || m.aborted {
		return false, ErrAborted
	}
	if !m.answered {
		return def, nil
	}
	return m.answer, nil
}
