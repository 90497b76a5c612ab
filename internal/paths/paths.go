// Package paths resolves the CLI configuration directory location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvConfigDir is the environment variable that overrides the configuration
// directory.
const EnvConfigDir = "ASTRAL_CONFIG_DIR"

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
// Linux:   $XDG_CONFIG_HOME/astral (fallback ~/.config/astral)
// macOS:   ~/Library/Application Support/astral
// Windows: %APPDATA%/astral
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "astral"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "astral"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "astral"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > ASTRAL_CONFIG_DIR env > DefaultConfigDir().
//
// If flag is non-empty it wins. Otherwise the ASTRAL_CONFIG_DIR environment
// variable is checked. If neither is set, the platform default is returned.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}
