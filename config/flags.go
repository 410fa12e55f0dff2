package config

import (
	"flag"
	"fmt"
	"os"
)

// Flags holds parsed command-line flags. Flag parsing stops at the first
// non-flag argument, so global flags go before the subcommand and the
// remainder lands in Args.
type Flags struct {
	// Commands
	Help    bool
	Version bool

	// Config file
	Config string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args (subcommand and its arguments)
	Args []string

	// Explicitly-set flags (so file config doesn't clobber CLI overrides).
	SetLogLevel bool
	SetLogFile  bool
	SetLogJSON  bool
}

// ParseFlags parses the global command-line flags.
func ParseFlags() (*Flags, error) {
	f := &Flags{}

	fs := flag.NewFlagSet("keysplit-cli", flag.ContinueOnError)
	fs.BoolVar(&f.Help, "help", false, "Show usage")
	fs.BoolVar(&f.Version, "version", false, "Show version")
	fs.StringVar(&f.Config, "config", DefaultConfigFile(), "Config file path")
	fs.StringVar(&f.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write JSON logs to this file")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Log JSON to the console instead of colored output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "log-level":
			f.SetLogLevel = true
		case "log-file":
			f.SetLogFile = true
		case "log-json":
			f.SetLogJSON = true
		}
	})

	f.Args = fs.Args()
	return f, nil
}

// Load builds the effective configuration: defaults, overlaid by the
// config file, overlaid by explicitly-set CLI flags.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	values, err := LoadFile(f.Config)
	if err != nil {
		return nil, fmt.Errorf("load config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, values); err != nil {
		return nil, err
	}

	if f.SetLogLevel {
		cfg.Log.Level = f.LogLevel
	}
	if f.SetLogFile {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
