package domain

import "strings"

// ExecCommand represents an external command to be executed.
// Editor and pager settings such as "code --wait" or "less -FRX" are split into
// Program and Args by ParseCommandLine.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// ParseCommandLine splits a configured command line on whitespace.
// Extra arguments are appended after the configured ones.
// Returns nil when line is blank.
func ParseCommandLine(line string, extra ...string) *ExecCommand {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args := append(fields[1:len(fields):len(fields)], extra...)
	return &ExecCommand{Program: fields[0], Args: args}
}
