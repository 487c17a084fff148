package cmdparse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the last invocation routed to a handler.
type recorder struct {
	command string
	args    Args
	calls   int
}

func (r *recorder) handler(name string) Handler {
	return func(_ context.Context, args Args) error {
		r.command = name
		r.args = args
		r.calls++
		return nil
	}
}

func testGrammar(t *testing.T) (*Grammar, *recorder) {
	t.Helper()
	rec := &recorder{}
	reg := NewRegistry()
	reg.MustRegister(Command{Name: "AddPlayer", Args: []Arg{
		{Name: "player_id", Kind: Unsigned},
		{Name: "player_name", Kind: Quoted},
	}, Handler: rec.handler("AddPlayer")})
	reg.MustRegister(Command{Name: "AddVictory", Args: []Arg{
		{Name: "game_id", Kind: Unsigned},
		{Name: "victory_id", Kind: Unsigned},
		{Name: "victory_name", Kind: Quoted},
		{Name: "points", Kind: Signed},
	}, Handler: rec.handler("AddVictory")})
	reg.MustRegister(Command{Name: "VictoryRanking", Handler: rec.handler("VictoryRanking")})
	g, err := reg.Build()
	require.NoError(t, err)
	return g, rec
}

func TestGrammarParseBindsArguments(t *testing.T) {
	g, rec := testGrammar(t)

	require.NoError(t, g.Parse(context.Background(), `AddPlayer 1 "Ada Lovelace"`))
	assert.Equal(t, "AddPlayer", rec.command)
	assert.Equal(t, 2, rec.args.Len())
	assert.Equal(t, uint64(1), rec.args.Uint("player_id"))
	assert.Equal(t, "Ada Lovelace", rec.args.Text("player_name"))
}

func TestGrammarParseSignedAndSpacing(t *testing.T) {
	g, rec := testGrammar(t)

	require.NoError(t, g.Parse(context.Background(), "  \tAddVictory  3\t10   \"Head over heels\" -25   "))
	assert.Equal(t, "AddVictory", rec.command)
	assert.Equal(t, uint64(3), rec.args.Uint("game_id"))
	assert.Equal(t, uint64(10), rec.args.Uint("victory_id"))
	assert.Equal(t, "Head over heels", rec.args.Text("victory_name"))
	assert.Equal(t, int64(-25), rec.args.Int("points"))
}

func TestGrammarParseZeroArgs(t *testing.T) {
	g, rec := testGrammar(t)

	require.NoError(t, g.Parse(context.Background(), "VictoryRanking"))
	assert.Equal(t, "VictoryRanking", rec.command)
	assert.Zero(t, rec.args.Len())
}

func TestGrammarParseEmptyLine(t *testing.T) {
	g, rec := testGrammar(t)

	for _, line := range []string{"", "   ", "\t\r\n"} {
		assert.NoError(t, g.Parse(context.Background(), line))
	}
	assert.Zero(t, rec.calls)
}

func TestGrammarParseErrors(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantLine     string
		wantOffset   int
		wantExpected string
		wantCommand  string
	}{
		{
			name:         "negative id rejected at the sign",
			line:         `AddPlayer -1 "X"`,
			wantLine:     `AddPlayer -1 "X"`,
			wantOffset:   10,
			wantExpected: "unsigned integer (player_id)",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "unknown command",
			line:         `AddPlayers 1 "X"`,
			wantLine:     `AddPlayers 1 "X"`,
			wantOffset:   0,
			wantExpected: "command name (one of AddPlayer, AddVictory, VictoryRanking)",
		},
		{
			name:         "command names are case-sensitive",
			line:         "victoryranking",
			wantLine:     "victoryranking",
			wantOffset:   0,
			wantExpected: "command name (one of AddPlayer, AddVictory, VictoryRanking)",
		},
		{
			name:         "offset is relative to the stripped line",
			line:         `   AddPlayer x "X"`,
			wantLine:     `AddPlayer x "X"`,
			wantOffset:   10,
			wantExpected: "unsigned integer (player_id)",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "missing argument",
			line:         "AddPlayer 1",
			wantLine:     "AddPlayer 1",
			wantOffset:   11,
			wantExpected: "quoted string (player_name)",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "missing argument with trailing space",
			line:         "AddPlayer 1 ",
			wantLine:     "AddPlayer 1 ",
			wantOffset:   12,
			wantExpected: "quoted string (player_name)",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "unquoted string",
			line:         "AddPlayer 1 Ada",
			wantLine:     "AddPlayer 1 Ada",
			wantOffset:   12,
			wantExpected: "quoted string (player_name)",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "unterminated string",
			line:         `AddPlayer 1 "Ada`,
			wantLine:     `AddPlayer 1 "Ada`,
			wantOffset:   12,
			wantExpected: "quoted string (player_name)",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "extra argument",
			line:         `AddPlayer 1 "Ada" 2`,
			wantLine:     `AddPlayer 1 "Ada" 2`,
			wantOffset:   18,
			wantExpected: "end of line",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "zero-arg command with argument",
			line:         "VictoryRanking 1",
			wantLine:     "VictoryRanking 1",
			wantOffset:   15,
			wantExpected: "end of line",
			wantCommand:  "VictoryRanking",
		},
		{
			name:         "arguments must be separated",
			line:         `AddPlayer 1"Ada"`,
			wantLine:     `AddPlayer 1"Ada"`,
			wantOffset:   11,
			wantExpected: "whitespace",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "digits followed by letters",
			line:         `AddPlayer 1x "Ada"`,
			wantLine:     `AddPlayer 1x "Ada"`,
			wantOffset:   11,
			wantExpected: "whitespace",
			wantCommand:  "AddPlayer",
		},
		{
			name:         "space between sign and digits",
			line:         `AddVictory 1 2 "V" - 5`,
			wantLine:     `AddVictory 1 2 "V" - 5`,
			wantOffset:   19,
			wantExpected: "signed integer (points)",
			wantCommand:  "AddVictory",
		},
		{
			name:         "signed value where unsigned required",
			line:         `AddVictory 1 +2 "V" 5`,
			wantLine:     `AddVictory 1 +2 "V" 5`,
			wantOffset:   13,
			wantExpected: "unsigned integer (victory_id)",
			wantCommand:  "AddVictory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := testGrammar(t)

			err := g.Parse(context.Background(), tt.line)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantLine, pe.Line)
			assert.Equal(t, tt.wantOffset, pe.Offset)
			assert.Equal(t, tt.wantExpected, pe.Expected)
			assert.Equal(t, tt.wantCommand, pe.Command)
			assert.Zero(t, rec.calls, "handler must not run on a parse error")
		})
	}
}

func TestGrammarParseReturnsHandlerError(t *testing.T) {
	errBoom := errors.New("boom")
	reg := NewRegistry()
	reg.MustRegister(Command{Name: "Fail", Handler: func(context.Context, Args) error { return errBoom }})
	g, err := reg.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, g.Parse(context.Background(), "Fail"), errBoom)
}

func TestGrammarMatch(t *testing.T) {
	g, rec := testGrammar(t)

	inv, err := g.Match(`AddPlayer 7 "Grace"`)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, "AddPlayer", inv.Command.Name)
	assert.Equal(t, uint64(7), inv.Args.Uint("player_id"))
	assert.Zero(t, rec.calls)

	inv, err = g.Match("   ")
	assert.NoError(t, err)
	assert.Nil(t, inv)
}

func TestArgsWrongKindPanics(t *testing.T) {
	args := NewArgs(map[string]any{"player_id": uint64(1)})
	assert.Panics(t, func() { args.Text("player_id") })
	assert.Panics(t, func() { args.Int("missing") })
}

func TestParseErrorPretty(t *testing.T) {
	pe := &ParseError{Line: `AddPlayer -1 "X"`, Offset: 10, Expected: "unsigned integer (player_id)", Command: "AddPlayer"}
	assert.Equal(t, "AddPlayer -1 \"X\"\n          ^ Expected unsigned integer (player_id)", pe.Pretty())
	assert.Equal(t, "AddPlayer: expected unsigned integer (player_id) at char 10", pe.Error())

	// The caret column counts characters, not bytes.
	pe = &ParseError{Line: `AddPlayer 1 "Zoë" x`, Offset: 19, Expected: "end of line"}
	assert.Equal(t, 18, pe.Column())

	// Tabs before the column are kept so the caret lines up.
	pe = &ParseError{Line: "AddPlayer\t-1 \"X\"", Offset: 10, Expected: "unsigned integer (player_id)"}
	assert.Equal(t, "AddPlayer\t-1 \"X\"\n         \t^ Expected unsigned integer (player_id)", pe.Pretty())
}
