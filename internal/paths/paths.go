// Package paths resolves where moodlog keeps its database and config.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDBName is the database filename used inside the data directory.
const DefaultDBName = "mood.db"

// ErrNoDataDir is returned when no per-user data directory can be determined.
var ErrNoDataDir = errors.New("can't resolve dbpath. specify --dbpath option")

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// DataDir returns the platform's per-user application data directory:
// $XDG_DATA_HOME or ~/.local/share on Unix, ~/Library/Application Support on
// macOS and %APPDATA% on Windows.
func DataDir() (string, error) {
	return dataDirFor(runtime.GOOS)
}

func dataDirFor(goos string) (string, error) {
	switch goos {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return "", ErrNoDataDir
	case "darwin", "ios":
		home, err := userHomeDir()
		if err != nil || home == "" {
			return "", ErrNoDataDir
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		// Relative XDG paths are invalid per the basedir spec and are ignored.
		if dir := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(dir) {
			return dir, nil
		}
		home, err := userHomeDir()
		if err != nil || home == "" {
			return "", ErrNoDataDir
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// ResolveDBPath returns explicit verbatim when set, otherwise the default
// database location inside DataDir.
func ResolveDBPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultDBName), nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

// ConfigPath returns the location of the user config file.
// Uses $XDG_CONFIG_HOME/moodlog/config.yaml, falling back to
// ~/.config/moodlog/config.yaml.
func ConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := userHomeDir()
		if err != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "moodlog", "config.yaml")
}
