package gamedb

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/mesh-intelligence/gamedb/internal/tabular"
)

// App runs GameDB commands against a Store and writes their output to out.
type App struct {
	store  Store
	out    io.Writer
	logger *slog.Logger
}

// New returns an App. A nil logger discards log records.
func New(store Store, out io.Writer, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{store: store, out: out, logger: logger}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) table(headers []string, rows [][]string) {
	fmt.Fprintln(a.out, tabular.Numbered(headers, rows))
}

func itoa[T ~int | ~int64](n T) string {
	return strconv.FormatInt(int64(n), 10)
}

func ratio(n, total int) string {
	return itoa(n) + "/" + itoa(total)
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
