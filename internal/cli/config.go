package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/gamedb/internal/paths"
	"github.com/mesh-intelligence/gamedb/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix namespaces environment overrides, e.g. GAMEDB_DATABASE.
	envPrefix = "GAMEDB"

	cfgKeyDatabase      = "database"
	cfgKeyHistoryFile   = "history_file"
	cfgKeyHistoryLength = "history_length"
	cfgKeyPrompt        = "prompt"
	cfgKeyLogLevel      = "log_level"
)

// loadConfig reads config.yaml from configDir using Viper, layered over the
// built-in defaults and GAMEDB_* environment variables. A missing config.yaml
// is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	defaults := types.DefaultConfig()

	v := viper.New()
	v.SetDefault(cfgKeyDatabase, defaults.Database)
	v.SetDefault(cfgKeyHistoryFile, "")
	v.SetDefault(cfgKeyHistoryLength, defaults.HistoryLength)
	v.SetDefault(cfgKeyPrompt, defaults.Prompt)
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// sessionConfig builds the validated session settings from the loaded
// config, the global flags and the optional database argument.
func sessionConfig(v *viper.Viper, flags *rootFlags, configDir string, args []string) (types.Config, error) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}

	database, err := paths.ResolveDatabase(arg, v.GetString(cfgKeyDatabase))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve database: %w", err)
	}
	historyFile, err := paths.ResolveHistoryFile(flags.historyFile, v.GetString(cfgKeyHistoryFile), configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve history file: %w", err)
	}

	cfg := types.Config{
		Database:      database,
		HistoryFile:   historyFile,
		HistoryLength: v.GetInt(cfgKeyHistoryLength),
		Prompt:        v.GetString(cfgKeyPrompt),
		LogLevel:      v.GetString(cfgKeyLogLevel),
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with cfg if the file does not
// exist. If it already exists, the function returns false and nil.
func writeConfigIfMissing(configDir string, cfg types.Config) (bool, error) {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# GameDB configuration. Every key may be overridden with GAMEDB_<KEY>.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
