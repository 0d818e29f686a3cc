package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
)

// FileEnv names the environment variable holding an optional config file path
const FileEnv = "SETGAME_CONFIG"

// Config represents the server configuration
type Config struct {
	Port           int      `toml:"port" env:"SETGAME_PORT"`
	AllowedOrigins []string `toml:"allowed_origins" env:"SETGAME_ALLOWED_ORIGINS"`
	// Seed fixes the dealing sequence. Zero seeds from the clock.
	Seed      int64  `toml:"seed" env:"SETGAME_SEED"`
	StaticDir string `toml:"static_dir" env:"SETGAME_STATIC_DIR"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Port:           8000,
		AllowedOrigins: []string{"*"},
		StaticDir:      "./build",
	}
}

// Load builds the configuration from defaults, then the file named by
// SETGAME_CONFIG if any, then the environment
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("error decoding environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile decodes a TOML file over cfg. Keys missing from the file keep
// their current values.
func LoadFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if len(c.AllowedOrigins) == 0 {
		return errors.New("at least one allowed origin is required")
	}
	return nil
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
