package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvFile is the environment-definition file read from the working directory.
const EnvFile = ".env"

// Environment variables that override the config file.
const (
	EnvAPIKey   = "OPENAI_API_KEY"
	EnvProvider = "PROMPTGEN_PROVIDER"
	EnvBaseURL  = "PROMPTGEN_BASE_URL"
	EnvLogLevel = "PROMPTGEN_LOG_LEVEL"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	BaseURL  string `yaml:"base_url,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "openai",
		LogLevel: "warn",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptgen"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load builds the process configuration: defaults, then the YAML file at path
// (the default location when path is empty), then the .env file, then the
// process environment. It is meant to be called once at startup.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(EnvFile)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})

	return cfg, nil
}

// LoadFile reads the YAML config at path over the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vars, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIKey); ok {
		c.APIKey = v
	}
	if v, ok := lookup(EnvProvider); ok && v != "" {
		c.Provider = v
	}
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// MissingAPIKey reports whether the provider expects a key and none is set.
// Nothing is rejected locally; the endpoint refuses the call.
func (c *Config) MissingAPIKey() bool {
	p := GetProvider(c.Provider)
	return p != nil && p.NeedsAPIKey && c.APIKey == ""
}

// MaskedAPIKey returns the key with everything but its edges hidden.
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "Not set"
	}
	if len(c.APIKey) > 8 {
		return c.APIKey[:4] + "****" + c.APIKey[len(c.APIKey)-4:]
	}
	return "****"
}
