// Package config loads the khutwa CLI settings.
//
// Sources, later ones win:
//
//  1. built-in defaults (Default);
//  2. an optional JSON file (LoadJSON);
//  3. KHUTWA_* environment variables (LoadEnv);
//  4. command-line flags, applied by the cli package.
//
// JSON example:
//
//	{
//	  "server": "http://localhost:10000",
//	  "db": "khutwa-client.db",
//	  "timeout": "30s",
//	  "poll_interval": "5s",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

// Environment variable names
const (
	EnvServer       = "KHUTWA_SERVER"
	EnvDB           = "KHUTWA_DB"
	EnvTimeout      = "KHUTWA_TIMEOUT"
	EnvPollInterval = "KHUTWA_POLL_INTERVAL"
	EnvLogLevel     = "KHUTWA_LOG_LEVEL"
	EnvLogFormat    = "KHUTWA_LOG_FORMAT"
)

// Config holds the runtime settings of the CLI
type Config struct {
	ServerURL    string
	DBPath       string
	LogLevel     string
	LogFormat    string
	Timeout      time.Duration
	PollInterval time.Duration
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		ServerURL:    "http://localhost:10000",
		DBPath:       "khutwa-client.db",
		Timeout:      30 * time.Second,
		PollInterval: 5 * time.Second,
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

// fileConfig формат JSON файла; nil поля не переопределяют значения
type fileConfig struct {
	Server       *string `json:"server"`
	DB           *string `json:"db"`
	Timeout      *string `json:"timeout"`
	PollInterval *string `json:"poll_interval"`
	LogLevel     *string `json:"log_level"`
	LogFormat    *string `json:"log_format"`
}

// LoadJSON overlays values from the JSON file at path
func (c *Config) LoadJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setString(&c.ServerURL, fc.Server)
	setString(&c.DBPath, fc.DB)
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.LogFormat, fc.LogFormat)
	if err := setDuration(&c.Timeout, fc.Timeout, "timeout"); err != nil {
		return err
	}
	if err := setDuration(&c.PollInterval, fc.PollInterval, "poll_interval"); err != nil {
		return err
	}
	return nil
}

// LoadEnv overlays values from the environment. lookup is os.LookupEnv in
// production.
func (c *Config) LoadEnv(lookup func(string) (string, bool)) error {
	get := func(key string) *string {
		if v, ok := lookup(key); ok && v != "" {
			return &v
		}
		return nil
	}

	setString(&c.ServerURL, get(EnvServer))
	setString(&c.DBPath, get(EnvDB))
	setString(&c.LogLevel, get(EnvLogLevel))
	setString(&c.LogFormat, get(EnvLogFormat))
	if err := setDuration(&c.Timeout, get(EnvTimeout), EnvTimeout); err != nil {
		return err
	}
	if err := setDuration(&c.PollInterval, get(EnvPollInterval), EnvPollInterval); err != nil {
		return err
	}
	return nil
}

// Validate checks the final settings
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("server must be an http(s) URL, got %q", c.ServerURL))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, errors.New("poll interval must be positive"))
	}

	return errors.Join(errs...)
}

// Load builds a Config from defaults, the optional JSON file at path and
// the environment
func Load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadJSON(path); err != nil {
			return nil, err
		}
	}
	if lookup != nil {
		if err := cfg.LoadEnv(lookup); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string, name string) error {
	if v == nil || *v == "" {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, *v, err)
	}
	*dst = d
	return nil
}
