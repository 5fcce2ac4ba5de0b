package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Key actions that can be rebound from the config file.
const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionSelect = "select"
	ActionDelete = "delete"
	ActionAccept = "accept"
	ActionQuit   = "quit"
)

var knownActions = map[string]bool{
	ActionUp:     true,
	ActionDown:   true,
	ActionSelect: true,
	ActionDelete: true,
	ActionAccept: true,
	ActionQuit:   true,
}

// Config holds all goblin-prune configuration.
type Config struct {
	Remote     string              `yaml:"remote"`
	Filter     string              `yaml:"filter"`
	KeepSuffix string              `yaml:"keep_suffix"`
	Backend    string              `yaml:"backend"` // "exec" or "gogit"
	GitBinary  string              `yaml:"git_binary"`
	LogFile    string              `yaml:"log_file"`
	Keys       map[string][]string `yaml:"keys,omitempty"`
}

// DefaultConfig returns a Config with the historical topic/hez and -keep
// conventions.
func DefaultConfig() *Config {
	return &Config{
		Remote:     "origin",
		Filter:     "topic/hez",
		KeepSuffix: "-keep",
		Backend:    "exec",
		GitBinary:  "git",
		LogFile:    filepath.Join(configDir(), "goblin-prune.log"),
	}
}

func configDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".goblin-prune")
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// LoadConfig reads config from file, falling back to defaults, then applies
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("GOBLIN_PRUNE_REMOTE"); v != "" {
		cfg.Remote = v
	}
	if v, ok := os.LookupEnv("GOBLIN_PRUNE_FILTER"); ok {
		cfg.Filter = v
	}
	if v, ok := os.LookupEnv("GOBLIN_PRUNE_KEEP_SUFFIX"); ok {
		cfg.KeepSuffix = v
	}
	if v := os.Getenv("GOBLIN_PRUNE_BACKEND"); v != "" {
		cfg.Backend = v
	}

	return cfg, nil
}

// SaveConfig writes config to the given path.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// ConfigFileExists reports whether the config file exists at the given path.
func ConfigFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate checks values the session cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Remote) == "" {
		return fmt.Errorf("remote must not be empty")
	}
	switch c.Backend {
	case "", "exec", "gogit":
	default:
		return fmt.Errorf("unknown backend %q (want exec or gogit)", c.Backend)
	}

	var unknown []string
	for action, keys := range c.Keys {
		if !knownActions[action] {
			unknown = append(unknown, action)
			continue
		}
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: at least one key required", action)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown key actions: %s", strings.Join(unknown, ", "))
	}
	return nil
}
