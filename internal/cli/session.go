package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gamedb/internal/cmdparse"
	"github.com/mesh-intelligence/gamedb/internal/gamedb"
	"github.com/mesh-intelligence/gamedb/internal/history"
	"github.com/mesh-intelligence/gamedb/internal/paths"
	"github.com/mesh-intelligence/gamedb/internal/sqlite"
	"github.com/mesh-intelligence/gamedb/pkg/types"
)

const memoryNote = "NOTE: Connecting to a transient in-memory database. All data will be discarded upon exit."

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// session reads command lines and dispatches them until end of input.
type session struct {
	grammar *cmdparse.Grammar
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	prompt  string           // empty when input is not a terminal
	history *history.History // nil when history is disabled
	logger  *slog.Logger
}

// run processes every line of input. Parse errors and user errors are
// reported on errOut and the loop continues; any other error ends the
// session and is returned.
func (s *session) run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if s.history != nil {
			s.history.Add(line)
		}
		if err := s.dispatch(ctx, line); err != nil {
			return err
		}
	}
	if s.prompt != "" {
		fmt.Fprintln(s.out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (s *session) dispatch(ctx context.Context, line string) error {
	inv, err := s.grammar.Match(line)
	if err != nil {
		var pe *cmdparse.ParseError
		if !errors.As(err, &pe) {
			return err
		}
		s.reportParseError(pe)
		return nil
	}
	if inv == nil {
		return nil
	}

	s.logger.Debug("dispatching command", "command", inv.Command.Name)
	err = inv.Command.Handler(ctx, inv.Args)
	if err == nil {
		return nil
	}
	if types.IsUserError(err) {
		fmt.Fprintf(s.errOut, "ERROR: %s\n", err)
		return nil
	}
	return fmt.Errorf("%s: %w", inv.Command.Name, err)
}

func (s *session) reportParseError(pe *cmdparse.ParseError) {
	fmt.Fprintf(s.errOut, "ERROR: Invalid input:\n%s\n", pe.Pretty())
	if cmd, ok := s.grammar.Lookup(pe.Command); ok {
		fmt.Fprintf(s.errOut, "Usage: %s\n", cmd.Usage())
	}
}

// runSession opens the store named by the arguments or config and runs the
// interactive loop on the command's stdin.
func runSession(cmd *cobra.Command, flags *rootFlags, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	cfg, err := sessionConfig(v, flags, configDir, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, isTerminal(cmd.ErrOrStderr()))

	store, err := sqlite.Open(ctx, cfg.Database)
	if err != nil {
		return sysError(fmt.Errorf("open database: %w", err))
	}
	defer store.Close()
	logger.Debug("store opened", "database", store.Path())

	grammar, err := buildGrammar(gamedb.New(store, out, logger))
	if err != nil {
		return sysError(err)
	}

	interactive := isTerminal(cmd.InOrStdin())
	s := &session{
		grammar: grammar,
		in:      cmd.InOrStdin(),
		out:     out,
		errOut:  cmd.ErrOrStderr(),
		logger:  logger,
	}
	if interactive {
		s.prompt = cfg.Prompt
		if !flags.noHistory && cfg.HistoryLength > 0 {
			s.history = openHistory(cfg, logger)
		}
	}
	if s.history != nil {
		defer func() {
			if err := s.history.Flush(); err != nil {
				logger.Warn("history not saved", "path", s.history.Path(), "error", err)
				return
			}
			logger.Debug("history flushed", "path", s.history.Path())
		}()
	}

	if cfg.InMemory() {
		fmt.Fprintln(out, memoryNote)
	}

	if err := s.run(ctx); err != nil {
		return sysError(err)
	}
	return nil
}

// openHistory loads the history file. A history that cannot be loaded is
// logged and disabled rather than failing the session.
func openHistory(cfg types.Config, logger *slog.Logger) *history.History {
	h, err := history.Load(cfg.HistoryFile, cfg.HistoryLength)
	if err != nil {
		logger.Warn("history disabled", "path", cfg.HistoryFile, "error", err)
		return nil
	}
	logger.Debug("history loaded", "path", h.Path(), "lines", len(h.Lines()))
	return h
}

// isTerminal reports whether stream is an *os.File attached to a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
