package cmdparse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseError describes a line that does not match the grammar.
// Offset is a byte offset into Line, which is the input with leading
// whitespace removed.
type ParseError struct {
	Line     string
	Offset   int
	Expected string
	Command  string // empty when the command name itself did not match
}

func (e *ParseError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s: expected %s at char %d", e.Command, e.Expected, e.Offset)
	}
	return fmt.Sprintf("expected %s at char %d", e.Expected, e.Offset)
}

// Column returns the zero-based character column of Offset, counting runes.
func (e *ParseError) Column() int {
	offset := min(e.Offset, len(e.Line))
	return utf8.RuneCountInString(e.Line[:offset])
}

// Pretty renders the two-line diagnostic: the line itself, then a caret
// under the failing column followed by what was expected there. Tabs before
// the column are repeated in the caret line.
func (e *ParseError) Pretty() string {
	offset := min(e.Offset, len(e.Line))
	var pad strings.Builder
	for _, r := range e.Line[:offset] {
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	return fmt.Sprintf("%s\n%s^ Expected %s", e.Line, pad.String(), e.Expected)
}
