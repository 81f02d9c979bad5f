// Package config loads calculator settings from an optional YAML file and
// CALC_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vhscom/calc/internal/logger"
)

// Config holds every setting the calculator reads.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	StrictParens bool   `yaml:"strict_parens"`
	Listen       string `yaml:"listen"`
	APIKey       string `yaml:"api_key"`
	ServerURL    string `yaml:"server_url"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Listen:   ":8787",
	}
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "calc", "config.yaml")
}

// Load reads path and applies environment overrides. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	vars := map[string]*string{
		"CALC_LOG_LEVEL":  &c.LogLevel,
		"CALC_LOG_FILE":   &c.LogFile,
		"CALC_LISTEN":     &c.Listen,
		"CALC_API_KEY":    &c.APIKey,
		"CALC_SERVER_URL": &c.ServerURL,
	}
	for name, dst := range vars {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("CALC_STRICT_PARENS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CALC_STRICT_PARENS: %w", err)
		}
		c.StrictParens = b
	}
	return nil
}
