package config

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config drives the watcher. Values come from an optional YAML file with
// env-var overrides on top, so the watcher runs with no file at all.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"api"`
	Poll struct {
		IntervalSeconds int `yaml:"interval_seconds"`
		MaxAttempts     int `yaml:"max_attempts"`
	} `yaml:"poll"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if cfg.API.BaseURL == "" {
		return nil, errors.New("api.base_url is required")
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PIX_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("POLL_INTERVAL_SECONDS"); v != "" {
		cfg.Poll.IntervalSeconds = atoiOr(cfg.Poll.IntervalSeconds, v)
	}
	if v := os.Getenv("POLL_MAX_ATTEMPTS"); v != "" {
		cfg.Poll.MaxAttempts = atoiOr(cfg.Poll.MaxAttempts, v)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080"
	}
	if cfg.Poll.IntervalSeconds <= 0 {
		cfg.Poll.IntervalSeconds = 5
	}
	if cfg.Poll.MaxAttempts <= 0 {
		cfg.Poll.MaxAttempts = 24
	}
}

func atoiOr(def int, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
