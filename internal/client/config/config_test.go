package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "http://localhost:10000", c.ServerURL)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.Equal(t, 5*time.Second, c.PollInterval)
	assert.Equal(t, "warn", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, `{"server":"http://file:1","timeout":"10s","poll_interval":"2s","db":"file.db"}`)

	cfg, err := Load(path, envMap(map[string]string{
		EnvServer:   "https://env:2",
		EnvLogLevel: "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://env:2", cfg.ServerURL, "env overrides file")
	assert.Equal(t, "file.db", cfg.DBPath)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "default kept")
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadJSON_Errors(t *testing.T) {
	c := Default()
	assert.Error(t, c.LoadJSON(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, c.LoadJSON(writeFile(t, `{not json`)))
	assert.ErrorContains(t, c.LoadJSON(writeFile(t, `{"timeout":"soon"}`)), "timeout")
}

func TestLoadEnv_InvalidDuration(t *testing.T) {
	c := Default()
	err := c.LoadEnv(envMap(map[string]string{EnvPollInterval: "often"}))
	assert.ErrorContains(t, err, EnvPollInterval)
}

func TestLoadEnv_EmptyValuesIgnored(t *testing.T) {
	c := Default()
	require.NoError(t, c.LoadEnv(envMap(map[string]string{EnvServer: ""})))
	assert.Equal(t, "http://localhost:10000", c.ServerURL)
}

func TestValidate(t *testing.T) {
	c := &Config{ServerURL: "localhost:10000", Timeout: 0, PollInterval: -1}
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "server must be an http(s) URL")
	assert.ErrorContains(t, err, "db path is required")
	assert.ErrorContains(t, err, "timeout must be positive")
	assert.ErrorContains(t, err, "poll interval must be positive")
}
