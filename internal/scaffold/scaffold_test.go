package scaffold

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/labinit/internal/git"
)

func newTestProject(t *testing.T) *Project {
	t.Helper()

	p, err := NewProject("test-project", t.TempDir())
	require.NoError(t, err)

	p.Description = "A test project"
	p.Author = "Ada Lovelace"
	p.Email = "ada@example.org"
	p.PythonVersion = ">=3.8"
	p.License = "MIT"
	p.SetDeps([]string{"numpy", "pytest"})
	return p
}

func TestRun_GeneratesFullProject(t *testing.T) {
	p := newTestProject(t)

	var out bytes.Buffer
	result, err := Run(context.Background(), p, Options{Out: &out})
	require.NoError(t, err)

	// Directory tree
	assert.DirExists(t, filepath.Join(p.Path, "src", "test_project"))
	assert.DirExists(t, filepath.Join(p.Path, "notebooks"))

	// Rendered files
	assert.FileExists(t, filepath.Join(p.Path, "README.md"))
	assert.FileExists(t, filepath.Join(p.Path, ".gitignore"))
	assert.FileExists(t, filepath.Join(p.Path, "pyproject.toml"))
	assert.FileExists(t, filepath.Join(p.Path, "setup.py"))
	assert.FileExists(t, filepath.Join(p.Path, "LICENSE"))
	assert.FileExists(t, filepath.Join(p.Path, "src", "test_project", "core.py"))
	assert.FileExists(t, filepath.Join(p.Path, "tests", "test_core.py"))
	assert.FileExists(t, filepath.Join(p.Path, "notebooks", "sample_notebook.ipynb"))
	assert.FileExists(t, filepath.Join(p.Path, "docs", "README.md"))

	requirements, err := os.ReadFile(filepath.Join(p.Path, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "numpy\npytest\n", string(requirements))

	readme, err := os.ReadFile(filepath.Join(p.Path, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# test-project")
	assert.Contains(t, string(readme), "A test project")

	assert.Contains(t, result.Files, "LICENSE")
	assert.Empty(t, result.Warnings)
	assert.Contains(t, out.String(), "Created directory structure")
}

func TestRun_WithGit(t *testing.T) {
	p := newTestProject(t)
	p.InitGit = true

	var out bytes.Buffer
	result, err := Run(context.Background(), p, Options{Out: &out})
	require.NoError(t, err)

	assert.True(t, result.GitInitialized)
	assert.True(t, git.IsRepository(p.Path))
	assert.Empty(t, result.Warnings)
}

func TestRun_NoLicense(t *testing.T) {
	p := newTestProject(t)
	p.License = "None"

	_, err := Run(context.Background(), p, Options{Out: &bytes.Buffer{}})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(p.Path, "LICENSE"))

	pyproject, err := os.ReadFile(filepath.Join(p.Path, "pyproject.toml"))
	require.NoError(t, err)
	assert.NotContains(t, string(pyproject), "license =")
}

func TestRun_DryRun(t *testing.T) {
	p := newTestProject(t)
	p.InitGit = true
	p.CreateVenv = true

	var out bytes.Buffer
	result, err := Run(context.Background(), p, Options{DryRun: true, Out: &out})
	require.NoError(t, err)

	assert.NoDirExists(t, p.Path, "dry run must not create the project")
	assert.Empty(t, result.Files)

	plan := out.String()
	assert.Contains(t, plan, "Would create project test-project")
	assert.Contains(t, plan, filepath.Join("src", "test_project")+"/")
	assert.Contains(t, plan, "pyproject.toml")
	assert.Contains(t, plan, "LICENSE")
	assert.Contains(t, plan, "git init")
	assert.Contains(t, plan, "python -m venv")
}

func TestRun_VenvFailureIsWarning(t *testing.T) {
	p := newTestProject(t)
	p.CreateVenv = true

	// Empty PATH: no python interpreter available
	t.Setenv("PATH", t.TempDir())

	var out bytes.Buffer
	result, err := Run(context.Background(), p, Options{Out: &out})
	require.NoError(t, err, "venv failure must not abort generation")

	assert.False(t, result.VenvCreated)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "venv creation failed")
	assert.FileExists(t, filepath.Join(p.Path, "README.md"), "files still generated")
}

func TestGenerateFiles_AllWritten(t *testing.T) {
	p := newTestProject(t)
	require.NoError(t, os.MkdirAll(p.Path, 0o755))
	require.NoError(t, CreateLayout(p.Path, p.PackageName))

	files, err := GenerateFiles(p)
	require.NoError(t, err)
	assert.Len(t, files, 10)

	for _, rel := range files {
		assert.FileExists(t, filepath.Join(p.Path, rel))
	}
}
