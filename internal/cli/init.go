package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gamedb/internal/paths"
	"github.com/mesh-intelligence/gamedb/internal/sqlite"
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init [database]",
		Short: "Initialize gamedb configuration and storage",
		Long: "Create the configuration directory and a default config.yaml. When a\n" +
			"database file is given or configured, create it and apply the schema.\n" +
			"Running init again leaves an existing config.yaml untouched.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags, args)
		},
	}
}

func runInit(cmd *cobra.Command, flags *rootFlags, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	cfg, err := sessionConfig(v, flags, configDir, args)
	if err != nil {
		return err
	}

	// Keep the history default relative to the config directory unless it
	// was set explicitly.
	toWrite := cfg
	if flags.historyFile == "" && v.GetString(cfgKeyHistoryFile) == "" {
		toWrite.HistoryFile = ""
	}
	created, err := writeConfigIfMissing(configDir, toWrite)
	if err != nil {
		return sysError(err)
	}

	if !cfg.InMemory() {
		store, err := sqlite.Open(cmd.Context(), cfg.Database)
		if err != nil {
			return sysError(fmt.Errorf("initialize storage: %w", err))
		}
		if err := store.Close(); err != nil {
			return sysError(fmt.Errorf("finalize storage: %w", err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", cfg.Database)
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s/%s\n", configDir, configFileExt)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "GameDB initialized successfully")
	return nil
}
