package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataLines returns the fields of every line that starts with a row number.
func dataLines(out string) [][]string {
	var lines [][]string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0][0] < '0' || fields[0][0] > '9' {
			continue
		}
		lines = append(lines, fields)
	}
	return lines
}

func TestNumbered(t *testing.T) {
	out := Numbered([]string{"Name", "Score"}, [][]string{
		{"Bob", "10"},
		{"Cy", "-5"},
	})

	header := strings.Fields(strings.Split(out, "\n")[0])
	assert.Equal(t, []string{"#", "Name", "Score"}, header)

	rows := dataLines(out)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Bob", "10"}, rows[0])
	assert.Equal(t, []string{"2", "Cy", "-5"}, rows[1])
}

func TestNumbered_Empty(t *testing.T) {
	out := Numbered([]string{"Player"}, nil)
	assert.Contains(t, out, "Player")
	assert.Empty(t, dataLines(out))
}

func TestNumbered_ColumnsAlign(t *testing.T) {
	out := Numbered([]string{"Name", "Score"}, [][]string{
		{"A", "1"},
		{"Much Longer Name", "2"},
	})
	var widths []int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "1") || strings.HasPrefix(strings.TrimSpace(line), "2") {
			widths = append(widths, strings.LastIndex(line, strings.Fields(line)[len(strings.Fields(line))-1]))
		}
	}
	require.Len(t, widths, 2)
	assert.Equal(t, widths[0], widths[1])
}
