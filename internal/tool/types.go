package tool

import (
	"fmt"
	"time"
)

// Param documents one keyword argument a tool accepts.
type Param struct {
	Name        string
	Required    bool
	Description string
}

// Declaration declares a tool's call signature for the system prompt.
type Declaration struct {
	Name        string
	Description string
	Params      []Param
}

// Usage renders the declaration in call syntax, e.g. read_file(file_path).
func (d Declaration) Usage() string {
	s := d.Name + "("
	for i, p := range d.Params {
		if i > 0 {
			s += ", "
		}
		if p.Required {
			s += p.Name
		} else {
			s += "[" + p.Name + "]"
		}
	}
	return s + ")"
}

// Arg is one keyword argument as written by the model.
type Arg struct {
	Key   string
	Value string
}

// Args is an ordered keyword mapping. Keys are unique; setting an existing
// key replaces its value in place.
type Args []Arg

// Set assigns value to key, preserving the key's original position.
func (a *Args) Set(key, value string) {
	for i := range *a {
		if (*a)[i].Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Arg{Key: key, Value: value})
}

// Get returns the value for key.
func (a Args) Get(key string) (string, bool) {
	for _, arg := range a {
		if arg.Key == key {
			return arg.Value, true
		}
	}
	return "", false
}

// Map returns the arguments as a plain map.
func (a Args) Map() map[string]any {
	m := make(map[string]any, len(a))
	for _, arg := range a {
		m[arg.Key] = arg.Value
	}
	return m
}

// Call is a single tool invocation extracted from model text.
type Call struct {
	ID   string
	Name string
	Args Args
}

func (c Call) String() string {
	s := c.Name + "("
	for i, arg := range c.Args {
		if i > 0 {
			s += ", "
		}
		v := arg.Value
		if r := []rune(v); len(r) > 60 {
			v = string(r[:57]) + "..."
		}
		s += fmt.Sprintf("%s=%q", arg.Key, v)
	}
	return s + ")"
}

// Output tells feedback synthesis which payload of a successful Result
// carries the information.
type Output int

const (
	OutputMessage Output = iota
	OutputContent
	OutputProcess
	OutputEntries
)

// Result is the outcome of one tool call. Failures carry Kind and Error;
// successes carry the payload selected by Output.
type Result struct {
	Success bool
	Kind    Kind
	Error   string

	Output  Output
	Message string

	// read_file
	Content string
	Chars   int
	Lines   int

	// execute_python, run_command
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool

	// list_directory
	Entries []string

	// write_file, append_file
	BytesWritten *int

	Path string
}

// Succeed builds a successful message-only result.
func Succeed(msg string) Result {
	return Result{Success: true, Output: OutputMessage, Message: msg}
}

// Fail builds a failed result of the given kind.
func Fail(kind Kind, msg string) Result {
	return Result{Kind: kind, Error: msg}
}

// Failure classifies err and builds the matching failed result.
func Failure(err error) Result {
	return Fail(Classify(err), err.Error())
}

// HistoryEntry records one executed call. Entries are never mutated after
// they are appended.
type HistoryEntry struct {
	ID        string
	Tool      string
	Arguments Args
	Result    Result
	Timestamp time.Time
}
