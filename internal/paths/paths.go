// Package paths resolves the configuration directory and the files gamedb
// keeps there.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mesh-intelligence/gamedb/pkg/types"
)

// AppDirName is the directory created under the platform config root.
const AppDirName = "gamedb"

// HistoryFileName is the default history file inside the config directory.
const HistoryFileName = "history"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "GAMEDB_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/gamedb (fallback ~/.config/gamedb)
// macOS:   ~/Library/Application Support/gamedb
// Windows: %APPDATA%/gamedb
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > GAMEDB_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveHistoryFile returns the history file following the precedence
// chain: flag > config value > <configDir>/history.
func ResolveHistoryFile(flag, configValue, configDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	return filepath.Join(configDir, HistoryFileName), nil
}

// ResolveDatabase returns the database to open: the positional argument if
// given, else the config value, else the in-memory database. File paths are
// made absolute; ":memory:" and "file:" URIs are passed through.
func ResolveDatabase(arg, configValue string) (string, error) {
	db := arg
	if db == "" {
		db = configValue
	}
	switch {
	case db == "":
		return types.MemoryDatabase, nil
	case db == types.MemoryDatabase, strings.HasPrefix(db, "file:"):
		return db, nil
	}
	return filepath.Abs(db)
}
