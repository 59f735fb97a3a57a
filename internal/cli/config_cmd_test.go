package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow_Defaults(t *testing.T) {
	isolateEnv(t)

	out, err := executeCommand(t, "", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "license: MIT")
	assert.Contains(t, out, "python_version: '>=3.8'")
	assert.Contains(t, out, "venv_timeout: 600")
	assert.Contains(t, out, "numpy")
}

func TestConfigShow_ProjectOverride(t *testing.T) {
	isolateEnv(t)

	require.NoError(t, os.MkdirAll(".labinit", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(".labinit", "config.yml"),
		[]byte("license: BSD-3-Clause\n"), 0o644))

	out, err := executeCommand(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "license: BSD-3-Clause")
}

func TestConfigPath(t *testing.T) {
	isolateEnv(t)

	out, err := executeCommand(t, "", "config", "path")
	require.NoError(t, err)

	assert.Contains(t, out, "User config:")
	assert.Contains(t, out, "Project config:")
	assert.Contains(t, out, filepath.Join(".labinit", "config.yml"))
	assert.Contains(t, out, "(not present)")
}

func TestConfigMigrate_NoLegacyFiles(t *testing.T) {
	isolateEnv(t)

	out, err := executeCommand(t, "", "config", "migrate")
	require.NoError(t, err)

	assert.Contains(t, out, "user config: No JSON config found")
	assert.Contains(t, out, "project config: No JSON config found")
}

func TestConfigMigrate_ProjectLegacy(t *testing.T) {
	isolateEnv(t)

	require.NoError(t, os.MkdirAll(".labinit", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(".labinit", "config.json"),
		[]byte(`{"license": "Apache-2.0"}`), 0o644))

	out, err := executeCommand(t, "", "config", "migrate", "--project")
	require.NoError(t, err)
	assert.Contains(t, out, "Migrated")

	migrated, err := os.ReadFile(filepath.Join(".labinit", "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(migrated), "Apache-2.0")
}

func TestConfigMigrate_DryRun(t *testing.T) {
	isolateEnv(t)

	require.NoError(t, os.MkdirAll(".labinit", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(".labinit", "config.json"),
		[]byte(`{"license": "MIT"}`), 0o644))

	out, err := executeCommand(t, "", "config", "migrate", "--project", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would migrate")
	assert.NoFileExists(t, filepath.Join(".labinit", "config.yml"))
}
