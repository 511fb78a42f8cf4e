package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"workers": 8,
		"item_timeout": 30,
		"api_key": "test-key",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 30, cfg.ItemTimeout)
	assert.Equal(t, "test-key", cfg.APIKey)
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

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeTempConfig(t, "{not json")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_Ranges(t *testing.T) {
	cfg := &Config{Workers: 200}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Workers: 4, ItemTimeout: 30}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingJobFile(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Workers: 2}
	defaults := Config{Workers: 4, APIKey: "from-file", DatabaseURL: "postgres://x"}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 2, merged.Workers)
	assert.Equal(t, "from-file", merged.APIKey)
	assert.Equal(t, "postgres://x", merged.DatabaseURL)
}
