package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type GeminiConfig struct {
	APIKeys             []string `yaml:"api_keys"`
	Model               string   `yaml:"model"`
	PollIntervalSeconds int      `yaml:"poll_interval_seconds"`
	PollTimeoutSeconds  int      `yaml:"poll_timeout_seconds"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type WatchConfig struct {
	Input         string `yaml:"input"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file, merges API keys from the environment
// and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default builds a config from defaults and environment variables only,
// for running without a config file.
func Default() (*Config, error) {
	var cfg Config
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyEnv lets GEMINI_API_KEYS (comma separated) or GEMINI_API_KEY
// override the keys from the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			c.Gemini.APIKeys = keys
		}
		return
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKeys = []string{v}
	}
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEY)")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.PollIntervalSeconds == 0 {
		c.Gemini.PollIntervalSeconds = 2
	}
	if c.Gemini.PollTimeoutSeconds == 0 {
		c.Gemini.PollTimeoutSeconds = 300
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Watch.Input == "" {
		c.Watch.Input = "data/input"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 1
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

func (g GeminiConfig) PollInterval() time.Duration {
	return time.Duration(g.PollIntervalSeconds) * time.Second
}

func (g GeminiConfig) PollTimeout() time.Duration {
	return time.Duration(g.PollTimeoutSeconds) * time.Second
}
