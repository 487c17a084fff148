package sqlite

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	msqlite "modernc.org/sqlite"
)

var registerOnce sync.Once

// registerFunctions installs the application's scalar SQL functions. The
// driver applies them to every connection opened afterwards.
func registerFunctions() {
	registerOnce.Do(func() {
		msqlite.MustRegisterDeterministicScalarFunction("initials", 1, initialsFunc)
	})
}

func initialsFunc(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return Initials(v), nil
	case []byte:
		return Initials(string(v)), nil
	default:
		return nil, fmt.Errorf("initials: unsupported argument type %T", v)
	}
}

// Initials returns the upper-cased first letter of each whitespace-separated
// word, each followed by a period: "Ada Lovelace" becomes "A.L.".
func Initials(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteByte('.')
	}
	return b.String()
}
