package shell

import "strings"

// commandPrefix marks a line as a meta-command.
const commandPrefix = ":"

// emptyCommandName names the command of a bare ":" line.
const emptyCommandName = "<empty>"

// Command is a meta-command parsed from one interactive line. The set of
// variants is closed: Exit, Eval, Help and Unknown.
type Command interface {
	command()
}

// Exit ends the shell successfully.
type Exit struct{}

// Eval runs each file in order. A failing file does not stop the rest.
type Eval struct {
	Paths []string
}

// Help lists the available commands.
type Help struct{}

// Unknown is any unrecognized command name.
type Unknown struct {
	Name string
}

func (Exit) command()    {}
func (Eval) command()    {}
func (Help) command()    {}
func (Unknown) command() {}

// ParseCommand classifies a trimmed line. It returns false when the line is
// source text rather than a meta-command.
func ParseCommand(line string) (Command, bool) {
	tail, ok := strings.CutPrefix(line, commandPrefix)
	if !ok {
		return nil, false
	}

	fields := strings.Fields(tail)
	if len(fields) == 0 {
		return Unknown{Name: emptyCommandName}, true
	}

	switch name, args := fields[0], fields[1:]; name {
	case "exit":
		return Exit{}, true
	case "eval":
		return Eval{Paths: args}, true
	case "help":
		return Help{}, true
	default:
		return Unknown{Name: name}, true
	}
}
