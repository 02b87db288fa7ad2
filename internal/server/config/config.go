// Package config loads the khutwa-server settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Переменные окружения сервера
const (
	EnvAddr       = "KHUTWA_ADDR"
	EnvDB         = "KHUTWA_SERVER_DB"
	EnvJWTSecret  = "KHUTWA_JWT_SECRET"
	EnvTokenTTL   = "KHUTWA_TOKEN_TTL"
	EnvRate       = "KHUTWA_RATE"
	EnvBurst      = "KHUTWA_BURST"
	EnvUploadDir  = "KHUTWA_UPLOAD_DIR"
	EnvLogLevel   = "KHUTWA_LOG_LEVEL"
	EnvLogFormat  = "KHUTWA_LOG_FORMAT"
	EnvAdminEmail = "KHUTWA_ADMIN_EMAIL"
)

// Config настройки сервера
type Config struct {
	Addr       string
	DBPath     string
	JWTSecret  string
	UploadDir  string
	LogLevel   string
	LogFormat  string
	AdminEmail string        // этот email получает роль admin при регистрации
	TokenTTL   time.Duration // время жизни bearer токена
	Rate       float64       // запросов в секунду с одного IP
	Burst      int
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Addr:      ":10000",
		DBPath:    "khutwa.db",
		UploadDir: "uploads",
		LogLevel:  "info",
		LogFormat: "text",
		TokenTTL:  7 * 24 * time.Hour,
		Rate:      20,
		Burst:     40,
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем .env файл
// (если есть), затем окружение, затем флаги из args.
func Load(args []string, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		if values != nil {
			dotenv = values
		}
	}

	// Окружение процесса важнее .env
	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}
	if err := cfg.applyEnv(get); err != nil {
		return nil, err
	}

	if err := cfg.parseFlags(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvAddr:       &c.Addr,
		EnvDB:         &c.DBPath,
		EnvJWTSecret:  &c.JWTSecret,
		EnvUploadDir:  &c.UploadDir,
		EnvLogLevel:   &c.LogLevel,
		EnvLogFormat:  &c.LogFormat,
		EnvAdminEmail: &c.AdminEmail,
	}
	for key, dst := range strs {
		if v, ok := get(key); ok {
			*dst = v
		}
	}

	if v, ok := get(EnvTokenTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTokenTTL, err)
		}
		c.TokenTTL = d
	}
	if v, ok := get(EnvRate); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRate, err)
		}
		c.Rate = r
	}
	if v, ok := get(EnvBurst); ok {
		b, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvBurst, err)
		}
		c.Burst = b
	}
	return nil
}

func (c *Config) parseFlags(args []string) error {
	fs := flag.NewFlagSet("khutwa-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "Path to SQLite database")
	fs.StringVar(&c.JWTSecret, "jwt-secret", c.JWTSecret, "Secret for signing bearer tokens")
	fs.DurationVar(&c.TokenTTL, "token-ttl", c.TokenTTL, "Bearer token lifetime")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "Requests per second per client IP")
	fs.IntVar(&c.Burst, "burst", c.Burst, "Rate limiter burst size")
	fs.StringVar(&c.UploadDir, "upload-dir", c.UploadDir, "Directory for uploaded photos")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format: text, json")
	fs.StringVar(&c.AdminEmail, "admin-email", c.AdminEmail, "Email that is granted the admin role on sign-up")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("listen address is required"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	if len(c.JWTSecret) < 16 {
		errs = append(errs, fmt.Errorf("jwt secret must be at least 16 characters (set %s or -jwt-secret)", EnvJWTSecret))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}
	if c.Rate <= 0 || c.Burst <= 0 {
		errs = append(errs, errors.New("rate and burst must be positive"))
	}
	if c.UploadDir == "" {
		errs = append(errs, errors.New("upload directory is required"))
	}
	return errors.Join(errs...)
}
