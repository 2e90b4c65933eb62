package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration the way every library binary does: the YAML file
// named by CONFIG_PATH (or ./config.yaml when present), overridden by
// environment variables, with env-default tags filling the rest.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFrom(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return LoadFrom(defaultConfigPath)
	}
	return LoadFrom("")
}

// LoadFrom reads the YAML file at path and then the environment. An empty
// path means environment and defaults only; a path that does not exist is
// an error.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// normalize folds case and whitespace on values compared as keywords or
// addresses, so "Kafka" and " ops@library.org " are accepted.
func (c *Config) normalize() {
	c.Notification.Driver = strings.ToLower(strings.TrimSpace(c.Notification.Driver))
	c.Mail.TLSPolicy = strings.ToLower(strings.TrimSpace(c.Mail.TLSPolicy))
	c.Verification.OperatorEmail = strings.TrimSpace(c.Verification.OperatorEmail)
	c.Verification.ConfirmBaseURL = strings.TrimRight(strings.TrimSpace(c.Verification.ConfirmBaseURL), "?")
	c.Mail.From = strings.TrimSpace(c.Mail.From)
}
