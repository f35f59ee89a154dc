// Package config loads application settings from a TOML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Env var names. AI_API_KEY is split out so it can live in a .env file
// next to the binary instead of the config file on disk.
const (
	EnvDataDir    = "FLASHRECIPE_DATA_DIR"
	EnvAIEndpoint = "FLASHRECIPE_AI_ENDPOINT"
	EnvAIModel    = "FLASHRECIPE_AI_MODEL"
	EnvAIKey      = "AI_API_KEY"
)

// Config holds every tunable the application reads at startup.
type Config struct {
	DataDir         string        `toml:"data_dir"`
	AIEndpoint      string        `toml:"ai_endpoint"`
	AIModel         string        `toml:"ai_model"`
	AIKey           string        `toml:"-"`
	DefaultServings int           `toml:"default_servings"`
	TickInterval    time.Duration `toml:"-"`
	TickMillis      int           `toml:"tick_millis"`
	LogLevel        string        `toml:"log_level"`
	LogFile         string        `toml:"log_file"`
}

// DefaultPath returns ~/.flashrecipe/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".flashrecipe", "config.toml"), nil
}

// Load reads the TOML file at path, applies env overrides, and fills
// defaults. A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Fine: run on defaults.
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvAIEndpoint); v != "" {
		c.AIEndpoint = v
	}
	if v := os.Getenv(EnvAIModel); v != "" {
		c.AIModel = v
	}
	if v := os.Getenv(EnvAIKey); v != "" {
		c.AIKey = v
	}
}

func (c *Config) applyDefaults(baseDir string) {
	if c.DataDir == "" {
		c.DataDir = filepath.Join(baseDir, "data")
	}
	if c.DefaultServings <= 0 {
		c.DefaultServings = 2
	}
	if c.TickMillis <= 0 {
		c.TickMillis = 200
	}
	c.TickInterval = time.Duration(c.TickMillis) * time.Millisecond
	if c.LogLevel == "" {
		c.LogLevel = "normal"
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(baseDir, "flashrecipe.log")
	}
}

// AIEnabled reports whether the import collaborator is usable.
func (c *Config) AIEnabled() bool {
	return c.AIEndpoint != "" && c.AIKey != ""
}

// String renders the config for debug logging, key redacted.
func (c *Config) String() string {
	key := "unset"
	if c.AIKey != "" {
		key = "set (" + strconv.Itoa(len(c.AIKey)) + " chars)"
	}
	return fmt.Sprintf("data_dir=%s ai_endpoint=%s ai_model=%s ai_key=%s tick=%s",
		c.DataDir, c.AIEndpoint, c.AIModel, key, c.TickInterval)
}
