// Package paths resolves configuration and cache directory locations for
// the inboxctl CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "inboxctl"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "INBOX_CONFIG_DIR"
	EnvCacheDir  = "INBOX_CACHE_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	userCacheDir  func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	userCacheDir:  os.UserCacheDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/inboxctl (fallback ~/.config/inboxctl)
// macOS:   ~/Library/Application Support/inboxctl
// Windows: %APPDATA%/inboxctl
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultCacheDir returns the platform-specific default model cache directory.
//
// Linux:   $XDG_CACHE_HOME/inboxctl (fallback ~/.cache/inboxctl)
// macOS:   ~/Library/Caches/inboxctl
// Windows: %LocalAppData%/inboxctl
func DefaultCacheDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".cache", appDirName), nil
	default:
		dir, err := platformDir.userCacheDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > INBOX_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveCacheDir returns the cache directory following the precedence
// chain: flag > configValue > INBOX_CACHE_DIR env > DefaultCacheDir().
// configValue is the cache_dir entry loaded from config.yaml, if any.
func ResolveCacheDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvCacheDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultCacheDir()
}
