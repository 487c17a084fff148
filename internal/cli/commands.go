package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gamedb/internal/cmdparse"
	"github.com/mesh-intelligence/gamedb/internal/gamedb"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands accepted by an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := buildGrammar(gamedb.New(nil, io.Discard, nil))
			if err != nil {
				return sysError(err)
			}
			out := cmd.OutOrStdout()
			for _, c := range grammar.Commands() {
				fmt.Fprintf(out, "Usage: %s\n    %s\n", c.Usage(), c.Summary)
			}
			return nil
		},
	}
}

// buildGrammar registers the app's commands and compiles the grammar.
func buildGrammar(app *gamedb.App) (*cmdparse.Grammar, error) {
	reg := cmdparse.NewRegistry()
	if err := app.Register(reg); err != nil {
		return nil, fmt.Errorf("register commands: %w", err)
	}
	grammar, err := reg.Build()
	if err != nil {
		return nil, fmt.Errorf("build grammar: %w", err)
	}
	return grammar, nil
}
