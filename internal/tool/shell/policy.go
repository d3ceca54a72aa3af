package shell

import (
	"path/filepath"
	"strings"
)

// Policy is the program allow-list consulted before anything is spawned.
// It is immutable after construction.
type Policy struct {
	programs       map[string]struct{}
	gitSubcommands map[string]struct{}
}

// NewPolicy builds a policy. Program names compare case-insensitively.
func NewPolicy(programs, gitSubcommands []string) *Policy {
	p := &Policy{
		programs:       make(map[string]struct{}, len(programs)),
		gitSubcommands: make(map[string]struct{}, len(gitSubcommands)),
	}
	for _, name := range programs {
		p.programs[strings.ToLower(name)] = struct{}{}
	}
	for _, sub := range gitSubcommands {
		p.gitSubcommands[sub] = struct{}{}
	}
	return p
}

// Check accepts argv when its program is allow-listed and, for git, when the
// subcommand is present and allow-listed.
func (p *Policy) Check(argv []string) error {
	if len(argv) == 0 {
		return &CommandRequiredError{}
	}

	program := strings.ToLower(filepath.Base(argv[0]))
	if _, ok := p.programs[program]; !ok {
		return &NotAllowedError{Program: program}
	}

	if program == "git" {
		if len(argv) < 2 {
			return &NotAllowedError{Program: program, Reason: "a subcommand is required"}
		}
		if _, ok := p.gitSubcommands[argv[1]]; !ok {
			return &NotAllowedError{Program: program, Subcommand: argv[1]}
		}
	}
	return nil
}
