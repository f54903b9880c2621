package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

// unsetForTest removes key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:8080", c.APIBaseURL)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, time.Hour, c.AccessTokenMaxAge)
	assert.Equal(t, 24*time.Hour, c.RefreshTokenMaxAge)
	assert.Equal(t, 24*time.Hour, c.UserEmailMaxAge)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	want := defaults()
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_base_url":    "https://json.example",
		"request_timeout": "20s",
		"log_level":       "debug",
		"database_path":   "/json/console.db",
	})
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("VC_LOG_LEVEL=warn\nVC_ENVIRONMENT=staging\n"), 0o600))

	unsetForTest(t, "VC_LOG_LEVEL")
	unsetForTest(t, "VC_ENVIRONMENT")
	t.Setenv("VC_REQUEST_TIMEOUT", "30s")

	cfg, err := LoadConfig([]string{"-env", envPath, "-c", jsonPath, "-a", "https://flag.example", "-unknown", "x"})
	require.NoError(t, err)

	want := defaults()
	// flag beats json, env beats json, dotenv feeds env
	want.APIBaseURL = "https://flag.example"
	want.RequestTimeout = 30 * time.Second
	want.LogLevel = "warn"
	want.DatabasePath = "/json/console.db"
	want.Environment = "staging"
	assert.Empty(t, cmp.Diff(&want, cfg))
}

func TestLoadConfig_DotenvDoesNotOverrideEnvironment(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("VC_LOG_FORMAT=json\n"), 0o600))
	t.Setenv("VC_LOG_FORMAT", "text")

	cfg, err := LoadConfig([]string{"-env", envPath})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "missing env file", args: []string{"-env", filepath.Join(t.TempDir(), "nope.env")}},
		{name: "missing json file", args: []string{"-c", filepath.Join(t.TempDir(), "nope.json")}},
		{name: "bad env duration", env: map[string]string{"VC_REQUEST_TIMEOUT": "soon"}},
		{name: "bad flag duration", args: []string{"-t", "abc"}},
		{name: "bad log format", args: []string{"-f", "xml"}},
		{name: "bad url", args: []string{"-a", "localhost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	c := defaults()
	c.RefreshTokenMaxAge = 0
	assert.ErrorContains(t, c.Validate(), "max ages")

	c = defaults()
	c.DatabasePath = ""
	assert.ErrorContains(t, c.Validate(), "database path")

	c = defaults()
	c.RequestTimeout = -time.Second
	assert.ErrorContains(t, c.Validate(), "timeout")
}
