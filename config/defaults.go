package config

// Default returns the default CLI configuration.
func Default() *Config {
	return &Config{
		Wallet: WalletConfig{
			DefaultChildCount: 10,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
