package config

import "fmt"

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	if cfg.Wallet.DefaultChildCount == 0 {
		return fmt.Errorf("wallet.childcount must be at least 1")
	}
	if cfg.Wallet.DefaultChildCount > MaxChildCount {
		return fmt.Errorf("wallet.childcount is %d, max is %d", cfg.Wallet.DefaultChildCount, MaxChildCount)
	}

	return nil
}
