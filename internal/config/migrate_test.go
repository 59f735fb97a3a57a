package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateJSONToYAML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	yamlPath := filepath.Join(dir, "sub", "config.yml")

	require.NoError(t, os.WriteFile(jsonPath,
		[]byte(`{"author": "Ada Lovelace", "venv_timeout": 300}`), 0o644))

	result, err := MigrateJSONToYAML(jsonPath, yamlPath, false)
	require.NoError(t, err)
	assert.True(t, result.Success)

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Labinit Configuration")
	assert.Contains(t, string(data), "author: Ada Lovelace")
	assert.Contains(t, string(data), "venv_timeout: 300")
}

func TestMigrateJSONToYAML_MissingSource(t *testing.T) {
	dir := t.TempDir()

	result, err := MigrateJSONToYAML(
		filepath.Join(dir, "missing.json"), filepath.Join(dir, "config.yml"), false)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "No JSON config found")
}

func TestMigrateJSONToYAML_TargetExists(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	yamlPath := filepath.Join(dir, "config.yml")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("author: Keep Me\n"), 0o644))

	result, err := MigrateJSONToYAML(jsonPath, yamlPath, false)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "skipped")

	data, _ := os.ReadFile(yamlPath)
	assert.Equal(t, "author: Keep Me\n", string(data), "existing YAML untouched")
}

func TestMigrateJSONToYAML_DryRun(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	yamlPath := filepath.Join(dir, "config.yml")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"author": "Ada"}`), 0o644))

	result, err := MigrateJSONToYAML(jsonPath, yamlPath, true)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.DryRun)
	assert.NoFileExists(t, yamlPath)
}

func TestMigrateJSONToYAML_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("{not json"), 0o644))

	_, err := MigrateJSONToYAML(jsonPath, filepath.Join(dir, "config.yml"), false)
	assert.Error(t, err)
}

func TestRemoveLegacyConfig(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0o644))

	require.NoError(t, RemoveLegacyConfig(jsonPath, true))
	assert.FileExists(t, jsonPath, "dry run keeps the file")

	require.NoError(t, RemoveLegacyConfig(jsonPath, false))
	assert.NoFileExists(t, jsonPath)

	assert.NoError(t, RemoveLegacyConfig(jsonPath, false), "missing file is not an error")
}
