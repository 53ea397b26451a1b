package shell

import "strings"

// Verb is the closed set of commands the interpreter understands.
type Verb int

const (
	VerbUnknown Verb = iota
	VerbLs
	VerbCd
	VerbExit
	VerbHead
	VerbCp
	VerbDu
)

var verbNames = map[string]Verb{
	"ls":   VerbLs,
	"cd":   VerbCd,
	"exit": VerbExit,
	"head": VerbHead,
	"cp":   VerbCp,
	"du":   VerbDu,
}

// ParseVerb maps a command name to its verb. Matching is exact and case sensitive.
func ParseVerb(name string) Verb {
	if v, ok := verbNames[name]; ok {
		return v
	}
	return VerbUnknown
}

func (v Verb) String() string {
	for name, verb := range verbNames {
		if verb == v {
			return name
		}
	}
	return "unknown"
}

// Command is a tokenised input line.
type Command struct {
	Verb Verb
	Name string
	Args []string
}

// Parse splits line on whitespace. ok is false when the line holds no tokens.
func Parse(line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{
		Verb: ParseVerb(fields[0]),
		Name: fields[0],
		Args: fields[1:],
	}, true
}

// Arg returns the i-th positional argument, or "" when absent.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// VerbInfo documents one command for the reference panel.
type VerbInfo struct {
	Verb        Verb
	Usage       string
	Description string
}

// Reference lists the supported commands in display order.
func Reference() []VerbInfo {
	return []VerbInfo{
		{Verb: VerbLs, Usage: "ls", Description: "List files and directories in the current directory"},
		{Verb: VerbCd, Usage: "cd <dir|..|/>", Description: "Change the current directory"},
		{Verb: VerbExit, Usage: "exit", Description: "Leave the terminal"},
		{Verb: VerbHead, Usage: "head <file>", Description: "Show the first lines of a file"},
		{Verb: VerbCp, Usage: "cp <source> <destination>", Description: "Copy a file within the current directory"},
		{Verb: VerbDu, Usage: "du", Description: "Show disk usage of the current directory"},
	}
}
