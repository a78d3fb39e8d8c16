// Package config loads curryplay settings from YAML, with environment
// overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/curry_ive_go/demo"
	"github.com/on-the-ground/curry_ive_go/log"
	"github.com/on-the-ground/curry_ive_go/playground"
)

// DefaultPath is where curryplay looks for its config when --config is not given.
const DefaultPath = "curryplay.yaml"

// Config holds all curryplay configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Playground PlaygroundConfig `yaml:"playground"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// PlaygroundConfig sets the defaults of a playground session.
type PlaygroundConfig struct {
	DefaultFunction string `yaml:"default_function"`
	DefaultMode     string `yaml:"default_mode"` // stepwise, grouped
	// MemoSize bounds the memo table of curried results; 0 disables it.
	MemoSize uint32 `yaml:"memo_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  string(log.LogError),
			Format: "console",
		},
		Playground: PlaygroundConfig{
			DefaultFunction: "add3",
			DefaultMode:     string(playground.ModeStepwise),
			MemoSize:        0,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CURRYPLAY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CURRYPLAY_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("CURRYPLAY_DEFAULT_MODE"); v != "" {
		c.Playground.DefaultMode = v
	}
	if v := os.Getenv("CURRYPLAY_MEMO_SIZE"); v != "" {
		// A malformed value keeps the configured size.
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Playground.MemoSize = uint32(n)
		}
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if lerr := log.Check(log.LogLevel(c.Logging.Level), c.Logging.Format); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("logging: %w", lerr))
	}
	if _, merr := playground.ParseMode(c.Playground.DefaultMode); merr != nil {
		err = multierr.Append(err, fmt.Errorf("playground.default_mode: %w", merr))
	}
	if _, ferr := demo.Lookup(c.Playground.DefaultFunction); ferr != nil {
		err = multierr.Append(err, fmt.Errorf("playground.default_function: %w", ferr))
	}
	return err
}
