package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// configEnv names the environment variable holding a config file path, used
// when --config is not given.
const configEnv = "ARITH_CONFIG"

// Config holds the driver configuration. The calculator itself has no
// settings.
type Config struct {
	Log  LogConfig  `toml:"log"`
	REPL REPLConfig `toml:"repl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error, or disabled.
	Level string `toml:"level"`
}

// REPLConfig holds settings for the interactive session.
type REPLConfig struct {
	// Greeting prints the welcome text before the first prompt.
	Greeting bool `toml:"greeting"`
	// Color allows styled output when stdout is a terminal.
	Color bool `toml:"color"`
}

// DefaultConfig is the configuration used when there is no config file.
func DefaultConfig() Config {
	return Config{
		Log:  LogConfig{Level: "warn"},
		REPL: REPLConfig{Greeting: true, Color: true},
	}
}

// LoadConfig loads configuration from a TOML file. Keys missing from the file
// keep their defaults. An empty path falls back to $ARITH_CONFIG, and with
// neither the result is DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return cfg, nil
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, fmt.Errorf("config file not found: %s", path)
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
