package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history")

	h, err := Load(path, 10)
	require.NoError(t, err)
	assert.Empty(t, h.Lines())
	assert.Equal(t, path, h.Path())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("", 10)
	assert.Error(t, err)
}

func TestLoad_SkipsBlankLinesAndTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("one\n\ntwo\n   \nthree\n"), 0o600))

	h, err := Load(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "three"}, h.Lines())
}

func TestAddAndFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h, err := Load(path, 3)
	require.NoError(t, err)

	h.Add(`AddPlayer 1 "Ada"`)
	h.Add("   ")
	h.Add(`AddGame 1 "Chess"`)
	h.Add("VictoryRanking\n")
	h.Add("SummarizeGame 1")
	require.NoError(t, h.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AddGame 1 \"Chess\"\nVictoryRanking\nSummarizeGame 1\n", string(data))

	reloaded, err := Load(path, 3)
	require.NoError(t, err)
	assert.Equal(t, h.Lines(), reloaded.Lines())
}

func TestFlush_UnchangedIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, []byte("keep\n"), 0o600))

	h, err := Load(path, 10)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))
	require.NoError(t, h.Flush())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestZeroLengthKeepsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	h, err := Load(path, 0)
	require.NoError(t, err)

	h.Add("VictoryRanking")
	assert.Empty(t, h.Lines())
}
