package cmdparse

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Handler executes a matched command with its bound arguments.
type Handler func(ctx context.Context, args Args) error

// Arg declares one positional argument of a command.
type Arg struct {
	Name  string // binding name, e.g. "player_id"
	Kind  Kind
	Label string // usage label, e.g. "Player ID"; defaults to Name
}

func (a Arg) describe() string {
	return fmt.Sprintf("%s (%s)", a.Kind, a.Name)
}

// Command associates a command name with its ordered arguments and handler.
type Command struct {
	Name    string
	Args    []Arg
	Summary string
	Handler Handler
}

// Usage returns the one-line usage string, e.g.
// "AddPlayer <Player ID> <Player Name>".
func (c Command) Usage() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, a := range c.Args {
		label := a.Label
		if label == "" {
			label = a.Name
		}
		b.WriteString(" <")
		b.WriteString(label)
		b.WriteString(">")
	}
	return b.String()
}

// Registration errors.
var (
	ErrDuplicateCommand = errors.New("command already registered")
	ErrInvalidCommand   = errors.New("invalid command name")
	ErrInvalidArgument  = errors.New("invalid argument declaration")
	ErrNilHandler       = errors.New("command handler is nil")
	ErrEmptyRegistry    = errors.New("no commands registered")
)

// Registry collects command declarations before the grammar is built.
// A Registry is not safe for concurrent use; populate it at startup.
type Registry struct {
	commands []Command
	index    map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a command. It rejects duplicate or malformed names, argument
// lists with empty or repeated names, unknown token kinds, and nil handlers.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" || scanName(cmd.Name, 0) != len(cmd.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Name)
	}
	if _, exists := r.index[cmd.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Name)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, cmd.Name)
	}

	seen := make(map[string]bool, len(cmd.Args))
	for i, a := range cmd.Args {
		if a.Name == "" {
			return fmt.Errorf("%w: %s argument %d has no name", ErrInvalidArgument, cmd.Name, i+1)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: %s declares %q twice", ErrInvalidArgument, cmd.Name, a.Name)
		}
		if !a.Kind.valid() {
			return fmt.Errorf("%w: %s argument %q has unknown kind", ErrInvalidArgument, cmd.Name, a.Name)
		}
		seen[a.Name] = true
	}

	cmd.Args = append([]Arg(nil), cmd.Args...)
	r.index[cmd.Name] = len(r.commands)
	r.commands = append(r.commands, cmd)
	return nil
}

// MustRegister is like Register but panics on error. Use it for the static
// command table wired at startup.
func (r *Registry) MustRegister(cmd Command) {
	if err := r.Register(cmd); err != nil {
		panic(fmt.Sprintf("cmdparse: %v", err))
	}
}

// Build returns the combined grammar for every registered command. The
// grammar holds its own copy of the declarations; later registrations do not
// affect it.
func (r *Registry) Build() (*Grammar, error) {
	if len(r.commands) == 0 {
		return nil, ErrEmptyRegistry
	}

	g := &Grammar{
		commands: make(map[string]Command, len(r.commands)),
		names:    make([]string, 0, len(r.commands)),
	}
	for _, cmd := range r.commands {
		cmd.Args = append([]Arg(nil), cmd.Args...)
		g.commands[cmd.Name] = cmd
		g.names = append(g.names, cmd.Name)
	}
	sort.Strings(g.names)
	g.expectName = "command name (one of " + strings.Join(g.names, ", ") + ")"
	return g, nil
}
