package cmdparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindMatch(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		input   string
		offset  int
		want    any
		wantEnd int
		wantErr bool
	}{
		{name: "unsigned digits", kind: Unsigned, input: "42", want: uint64(42), wantEnd: 2},
		{name: "unsigned stops at non-digit", kind: Unsigned, input: "7 x", want: uint64(7), wantEnd: 1},
		{name: "unsigned from offset", kind: Unsigned, input: "ab 15", offset: 3, want: uint64(15), wantEnd: 5},
		{name: "unsigned leading zeros", kind: Unsigned, input: "007", want: uint64(7), wantEnd: 3},
		{name: "unsigned rejects minus", kind: Unsigned, input: "-1", wantErr: true},
		{name: "unsigned rejects plus", kind: Unsigned, input: "+1", wantErr: true},
		{name: "unsigned rejects empty", kind: Unsigned, input: "", wantErr: true},
		{name: "unsigned accepts max", kind: Unsigned, input: "9223372036854775807", want: uint64(MaxUnsigned), wantEnd: 19},
		{name: "unsigned rejects overflow", kind: Unsigned, input: "9223372036854775808", wantErr: true},
		{name: "signed negative", kind: Signed, input: "-15", want: int64(-15), wantEnd: 3},
		{name: "signed explicit plus", kind: Signed, input: "+8", want: int64(8), wantEnd: 2},
		{name: "signed bare digits", kind: Signed, input: "30", want: int64(30), wantEnd: 2},
		{name: "signed rejects space after sign", kind: Signed, input: "- 5", wantErr: true},
		{name: "signed rejects double sign", kind: Signed, input: "--5", wantErr: true},
		{name: "signed rejects lone sign", kind: Signed, input: "-", wantErr: true},
		{name: "signed rejects overflow", kind: Signed, input: "9223372036854775808", wantErr: true},
		{name: "quoted strips delimiters", kind: Quoted, input: `"Ada Lovelace"`, want: "Ada Lovelace", wantEnd: 14},
		{name: "quoted keeps special characters", kind: Quoted, input: `"Mirror's Edge: 100%!"`, want: "Mirror's Edge: 100%!", wantEnd: 22},
		{name: "quoted allows empty", kind: Quoted, input: `""`, want: "", wantEnd: 2},
		{name: "quoted stops at first closing quote", kind: Quoted, input: `"a" "b"`, want: "a", wantEnd: 3},
		{name: "quoted rejects bare word", kind: Quoted, input: "Ada", wantErr: true},
		{name: "quoted rejects unterminated", kind: Quoted, input: `"Ada`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, end, err := tt.kind.Match(tt.input, tt.offset)
			if tt.wantErr {
				var me *MatchError
				require.ErrorAs(t, err, &me)
				assert.Equal(t, tt.kind, me.Expected)
				assert.Equal(t, tt.offset, me.Offset)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unsigned integer", Unsigned.String())
	assert.Equal(t, "signed integer", Signed.String())
	assert.Equal(t, "quoted string", Quoted.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestKindMatchUnknown(t *testing.T) {
	_, _, err := Kind(0).Match("1", 0)
	require.Error(t, err)
	var me *MatchError
	assert.NotErrorAs(t, err, &me)
}
