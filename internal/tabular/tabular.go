// Package tabular renders report rows as plain numbered tables.
package tabular

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// asciiBorder keeps the output readable in pipes and log files.
var asciiBorder = lipgloss.Border{
	Top:          "-",
	Bottom:       "-",
	Left:         "|",
	Right:        "|",
	TopLeft:      "+",
	TopRight:     "+",
	BottomLeft:   "+",
	BottomRight:  "+",
	MiddleLeft:   "+",
	MiddleRight:  "+",
	Middle:       "+",
	MiddleTop:    "+",
	MiddleBottom: "+",
}

var cellStyle = lipgloss.NewStyle().PaddingRight(2)

// Numbered renders rows under headers with a leading "#" column numbering
// the rows 1..N.
func Numbered(headers []string, rows [][]string) string {
	t := table.New().
		Border(asciiBorder).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(append([]string{"#"}, headers...)...)

	for i, r := range rows {
		t.Row(append([]string{strconv.Itoa(i + 1)}, r...)...)
	}
	return t.String()
}
