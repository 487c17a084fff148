// Package cli implements the gamedb command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir   string
	historyFile string
	noHistory   bool
	verbose     bool
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by the root command to a process exit code.
// Errors not marked otherwise are usage or configuration mistakes.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "gamedb" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "gamedb [database]",
		Short: "A gamer information database with a console UI",
		Long: "GameDB records players, games, victories and friendships in SQLite\n" +
			"and answers leaderboard and summary queries. Commands are read one per\n" +
			"line from standard input. Without a database argument the session uses\n" +
			"a transient in-memory database.",
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, flags, args)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/gamedb)")
	root.PersistentFlags().StringVar(&flags.historyFile, "history-file", "", "command history file (default: <config-dir>/history)")
	root.PersistentFlags().BoolVar(&flags.noHistory, "no-history", false, "do not read or write the command history")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(flags))
	root.AddCommand(newCommandsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(exitCode(err))
	}
}
