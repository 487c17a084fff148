package cmdparse

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// whitespace separates the command name and its arguments.
const whitespace = " \t\r\n\v\f"

// Grammar is the combined matcher for every registered command.
// It is immutable and safe for concurrent use.
type Grammar struct {
	commands   map[string]Command
	names      []string
	expectName string
}

// Invocation is a matched line: the command and its converted arguments.
type Invocation struct {
	Command Command
	Args    Args
}

// Commands returns the registered commands sorted by name.
func (g *Grammar) Commands() []Command {
	out := make([]Command, 0, len(g.names))
	for _, name := range g.names {
		out = append(out, g.commands[name])
	}
	return out
}

// Lookup returns the command registered under name.
func (g *Grammar) Lookup(name string) (Command, bool) {
	cmd, ok := g.commands[name]
	return cmd, ok
}

// Parse matches line and, on success, invokes the command handler with the
// bound arguments. An empty or all-whitespace line does nothing. A line that
// does not match returns a *ParseError; otherwise the handler's error is
// returned unchanged.
func (g *Grammar) Parse(ctx context.Context, line string) error {
	inv, err := g.Match(line)
	if err != nil || inv == nil {
		return err
	}
	return inv.Command.Handler(ctx, inv.Args)
}

// Match matches line against the grammar without running the handler.
// It returns (nil, nil) for an empty line.
func (g *Grammar) Match(line string) (*Invocation, error) {
	line = strings.TrimLeft(line, whitespace)
	if line == "" {
		return nil, nil
	}

	nameEnd := scanName(line, 0)
	cmd, ok := g.commands[line[:nameEnd]]
	if !ok {
		return nil, &ParseError{Line: line, Offset: 0, Expected: g.expectName}
	}

	fail := func(offset int, expected string) (*Invocation, error) {
		return nil, &ParseError{Line: line, Offset: offset, Expected: expected, Command: cmd.Name}
	}

	pos := nameEnd
	values := make(map[string]any, len(cmd.Args))
	for _, arg := range cmd.Args {
		next := skipSpace(line, pos)
		if next == len(line) {
			return fail(next, arg.describe())
		}
		if next == pos {
			return fail(pos, "whitespace")
		}

		v, end, err := arg.Kind.Match(line, next)
		if err != nil {
			var me *MatchError
			if errors.As(err, &me) {
				return fail(me.Offset, arg.describe())
			}
			return nil, err
		}
		values[arg.Name] = v
		pos = end
	}

	if rest := skipSpace(line, pos); rest != len(line) {
		return fail(rest, "end of line")
	}

	return &Invocation{Command: cmd, Args: Args{values: values}}, nil
}

// scanName returns the end of the identifier starting at offset.
func scanName(s string, offset int) int {
	end := offset
	for end < len(s) {
		ch := s[end]
		if !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || isDigit(ch) || ch == '_') {
			break
		}
		end++
	}
	return end
}

func skipSpace(s string, offset int) int {
	for offset < len(s) && strings.IndexByte(whitespace, s[offset]) >= 0 {
		offset++
	}
	return offset
}

// Args holds the converted arguments of a matched command, keyed by the
// declared argument name. The typed getters panic when the name is not
// declared with a matching kind, which is a wiring bug rather than bad input.
type Args struct {
	values map[string]any
}

// NewArgs builds an Args from already converted values. It is meant for
// calling handlers directly, e.g. in tests.
func NewArgs(values map[string]any) Args {
	return Args{values: values}
}

// Len returns the number of bound arguments.
func (a Args) Len() int {
	return len(a.values)
}

// Uint returns an Unsigned argument.
func (a Args) Uint(name string) uint64 {
	return lookup[uint64](a, name)
}

// Int returns a Signed argument.
func (a Args) Int(name string) int64 {
	return lookup[int64](a, name)
}

// Text returns a Quoted argument.
func (a Args) Text(name string) string {
	return lookup[string](a, name)
}

func lookup[T any](a Args, name string) T {
	v, ok := a.values[name].(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("cmdparse: argument %q is not bound as %T", name, zero))
	}
	return v
}
