package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the compiled-in defaults plus any file/env overrides.
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	UserAgent      string        `yaml:"user_agent"`
	Timeout        time.Duration `yaml:"timeout"`
	ImageCacheSize int           `yaml:"image_cache_size"`
	MaxMediaItems  int           `yaml:"max_media_items"`
	HistorySize    int           `yaml:"history_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:        "https://en.wikipedia.org/api/rest_v1",
		UserAgent:      "wikideck/0.1 (https://github.com/wikideck/wikideck)",
		Timeout:        15 * time.Second,
		ImageCacheSize: 32,
		MaxMediaItems:  20,
		HistorySize:    50,
	}
}

// Load builds a Config from the defaults, an optional YAML file, and
// WIKIDECK_* environment variables, in that order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WIKIDECK_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("WIKIDECK_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("WIKIDECK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("WIKIDECK_IMAGE_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ImageCacheSize = n
		}
	}
	if v := os.Getenv("WIKIDECK_MAX_MEDIA_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxMediaItems = n
		}
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.ImageCacheSize < 1 {
		return fmt.Errorf("image_cache_size must be at least 1, got %d", c.ImageCacheSize)
	}
	if c.MaxMediaItems < 1 {
		return fmt.Errorf("max_media_items must be at least 1, got %d", c.MaxMediaItems)
	}
	return nil
}
