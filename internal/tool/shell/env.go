package shell

import "strings"

// strippedEnv names variables that would let a child process source
// arbitrary startup files.
var strippedEnv = []string{"BASH_ENV", "ENV", "SHELL"}

// ChildEnv returns base without the variables in strippedEnv.
func ChildEnv(base []string) []string {
	env := make([]string, 0, len(base))
outer:
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		for _, name := range strippedEnv {
			if key == name {
				continue outer
			}
		}
		env = append(env, kv)
	}
	return env
}
