package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "http://localhost:9090",
		"state_dir": "/tmp/rd-state",
		"timeout_seconds": 10,
		"verbose": true
	}`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090", cfg.BaseURL)
	assert.Equal(t, "/tmp/rd-state", cfg.StateDir)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{BaseURL: "http://localhost:9090"}
	defaults := Config{
		BaseURL:        DefaultBaseURL,
		StateDir:       "/tmp/state",
		TimeoutSeconds: DefaultTimeoutSeconds,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "http://localhost:9090", merged.BaseURL)
	assert.Equal(t, "/tmp/state", merged.StateDir)
	assert.Equal(t, DefaultTimeoutSeconds, merged.TimeoutSeconds)
}

func TestTimeout_FallsBackToDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultTimeoutSeconds*time.Second, cfg.Timeout())

	cfg.TimeoutSeconds = 5
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}
