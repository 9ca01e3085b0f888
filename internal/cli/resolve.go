package cli

import (
	"strconv"
	"strings"

	"github.com/ghi-cli/ghi/internal/domain"
)

// Command identifies a handler.
type Command int

// Commands.
const (
	CommandUnknown Command = iota
	CommandList
	CommandShow
	CommandSearch
	CommandOpen
	CommandClose
	CommandReopen
	CommandEdit
	CommandLabel
	CommandComment
)

// commandNames maps canonical command names to commands.
var commandNames = map[string]Command{
	"list":    CommandList,
	"show":    CommandShow,
	"search":  CommandSearch,
	"open":    CommandOpen,
	"close":   CommandClose,
	"reopen":  CommandReopen,
	"edit":    CommandEdit,
	"label":   CommandLabel,
	"comment": CommandComment,
}

// commandAliases maps single-letter aliases to command names.
var commandAliases = map[string]string{
	"o": "open",
	"c": "close",
	"e": "edit",
	"m": "comment",
	"s": "search",
}

// labelAliases maps the label aliases to their label command.
var labelAliases = map[string]string{
	"al": "add",
	"rl": "remove",
}

// String returns the canonical command name.
func (c Command) String() string {
	for name, cmd := range commandNames {
		if cmd == c {
			return name
		}
	}
	return "unknown"
}

// Options holds the parsed command-line options.
// Fields are ordered to minimize memory padding.
type Options struct {
	State      domain.State // Expanded state filter (default: open)
	Message    string       // -m text
	Repo       string       // -r value ("user/repo" or "repo")
	Cache      string       // -c directory
	Verbose    bool
	HasMessage bool // -m was given, even when empty
	Web        bool
	Version    bool
}

// Invocation is a fully resolved command line.
type Invocation struct {
	Options Options
	Name    string   // Command name after alias expansion (reported for unknown commands)
	Args    []string // Positional arguments after the command name
	Command Command
}

// Resolve turns positional arguments into an invocation.
//
// Rules, in order: no arguments means list; a first argument in canonical
// integer form means show; single-letter aliases are expanded; open with an
// argument means reopen; al and rl become label add and label remove; the
// arguments of search are joined into one term.
func Resolve(args []string, opts Options) Invocation {
	if len(args) == 0 {
		return Invocation{Command: CommandList, Name: "list", Options: opts}
	}

	name, rest := args[0], args[1:]
	if isCanonicalInt(name) {
		return Invocation{Command: CommandShow, Name: "show", Args: []string{name}, Options: opts}
	}
	if full, ok := commandAliases[name]; ok {
		name = full
	}

	switch {
	case name == "open" && len(rest) > 0:
		name = "reopen"
	case labelAliases[name] != "":
		rest = append([]string{labelAliases[name]}, rest...)
		name = "label"
	case name == "search" && len(rest) > 0:
		rest = []string{strings.Join(rest, " ")}
	}

	return Invocation{
		Command: commandNames[name],
		Name:    name,
		Args:    rest,
		Options: opts,
	}
}

// isCanonicalInt reports whether s is an integer written exactly as strconv.Itoa would write it.
func isCanonicalInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && strconv.Itoa(n) == s
}

// Arg returns the i-th positional argument, or "" when absent.
func (inv Invocation) Arg(i int) string {
	if i < len(inv.Args) {
		return inv.Args[i]
	}
	return ""
}
