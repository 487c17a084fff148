package cmdparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the type of a positional argument token.
type Kind int

// Argument token kinds.
const (
	// Unsigned is one or more decimal digits with no sign. Converts to uint64
	// and is limited to MaxUnsigned.
	Unsigned Kind = iota + 1
	// Signed is an optional single '+' or '-' immediately followed by digits.
	// Converts to int64.
	Signed
	// Quoted is text between a pair of double quotes. The quotes are
	// stripped; the content cannot contain a double quote.
	Quoted
)

// String returns the human-readable token description used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Unsigned:
		return "unsigned integer"
	case Signed:
		return "signed integer"
	case Quoted:
		return "quoted string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MaxUnsigned is the largest Unsigned value, the top of the SQLite INTEGER range.
const MaxUnsigned = 1<<63 - 1

func (k Kind) valid() bool {
	return k >= Unsigned && k <= Quoted
}

// MatchError reports the token kind that was expected and the byte offset at
// which matching failed.
type MatchError struct {
	Expected Kind
	Offset   int
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("expected %s at offset %d", e.Expected, e.Offset)
}

// Match reads one token of kind k from input starting at offset. On success
// it returns the converted value and the offset just past the token. On
// failure it returns a *MatchError whose Offset is the start of the token.
func (k Kind) Match(input string, offset int) (any, int, error) {
	switch k {
	case Unsigned:
		return matchUnsigned(input, offset)
	case Signed:
		return matchSigned(input, offset)
	case Quoted:
		return matchQuoted(input, offset)
	default:
		return nil, offset, fmt.Errorf("cmdparse: unknown token kind %d", int(k))
	}
}

func matchUnsigned(input string, offset int) (any, int, error) {
	end := scanDigits(input, offset)
	if end == offset {
		return nil, offset, &MatchError{Expected: Unsigned, Offset: offset}
	}
	v, err := strconv.ParseUint(input[offset:end], 10, 63)
	if err != nil {
		return nil, offset, &MatchError{Expected: Unsigned, Offset: offset}
	}
	return v, end, nil
}

func matchSigned(input string, offset int) (any, int, error) {
	digits := offset
	if digits < len(input) && (input[digits] == '+' || input[digits] == '-') {
		digits++
	}
	end := scanDigits(input, digits)
	if end == digits {
		return nil, offset, &MatchError{Expected: Signed, Offset: offset}
	}
	v, err := strconv.ParseInt(input[offset:end], 10, 64)
	if err != nil {
		return nil, offset, &MatchError{Expected: Signed, Offset: offset}
	}
	return v, end, nil
}

func matchQuoted(input string, offset int) (any, int, error) {
	if offset >= len(input) || input[offset] != '"' {
		return nil, offset, &MatchError{Expected: Quoted, Offset: offset}
	}
	closing := strings.IndexByte(input[offset+1:], '"')
	if closing < 0 {
		return nil, offset, &MatchError{Expected: Quoted, Offset: offset}
	}
	end := offset + 1 + closing
	return input[offset+1 : end], end + 1, nil
}

func scanDigits(input string, offset int) int {
	end := offset
	for end < len(input) && isDigit(input[end]) {
		end++
	}
	return end
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
