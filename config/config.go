// Package config handles runtime configuration for the keysplit CLI.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds runtime configuration.
type Config struct {
	// Wallet
	Wallet WalletConfig

	// Logging
	Log LogConfig
}

// WalletConfig holds derivation settings.
type WalletConfig struct {
	// DefaultChildCount is the number of child wallets the children
	// command derives when --count is not given.
	DefaultChildCount uint32 `conf:"wallet.childcount"`
}

// MaxChildCount is the hard cap on a single batch derivation. Each wallet
// walks the full five-level path, so unbounded batches would stall the CLI.
const MaxChildCount = 100000

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.keysplit
//	macOS:   ~/Library/Application Support/Keysplit
//	Windows: %APPDATA%\Keysplit
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".keysplit"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Keysplit")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Keysplit")
		}
		return filepath.Join(home, "AppData", "Roaming", "Keysplit")
	default:
		return filepath.Join(home, ".keysplit")
	}
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDataDir(), "keysplit.conf")
}
