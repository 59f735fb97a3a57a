// Package scaffold generates Python research project skeletons: directory
// layout, rendered project files, license, git repository, and virtual
// environment. It is the engine behind `labinit new`.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/raveheart1/labinit/internal/templates"
)

// packageNamePattern matches valid Python package identifiers after
// normalization.
var packageNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Project describes one research project to generate.
type Project struct {
	// Name is the project name as given on the command line. Used for the
	// directory name and display metadata (README, pyproject).
	Name string
	// PackageName is the normalized Python package identifier derived from
	// Name (lowercased, hyphens mapped to underscores).
	PackageName string
	// Path is the absolute path of the project directory.
	Path string

	Description   string
	Author        string
	Email         string
	PythonVersion string
	License       string
	Deps          []string

	// InitGit initializes a git repository with an initial commit.
	InitGit bool
	// CreateVenv creates a virtual environment and installs Deps.
	CreateVenv bool
}

// NewProject validates the project name and resolves the target path under
// location. Dependencies are deduplicated preserving first occurrence.
func NewProject(name, location string) (*Project, error) {
	pkg, err := NormalizePackageName(name)
	if err != nil {
		return nil, err
	}

	parent, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("resolving location %s: %w", location, err)
	}

	return &Project{
		Name:        name,
		PackageName: pkg,
		Path:        filepath.Join(parent, name),
	}, nil
}

// NormalizePackageName converts a project name to a Python package identifier
// and validates the result. Hyphens become underscores and letters are
// lowercased, mirroring common PyPI naming (e.g. "my-project" -> "my_project").
func NormalizePackageName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("project name must not be empty")
	}

	pkg := strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	if !packageNamePattern.MatchString(pkg) {
		return "", fmt.Errorf("invalid project name %q: must normalize to a Python identifier (letters, digits, underscores, not starting with a digit)", name)
	}
	return pkg, nil
}

// Exists reports whether the project directory already exists.
func (p *Project) Exists() bool {
	_, err := os.Stat(p.Path)
	return err == nil
}

// SetDeps replaces the dependency list, dropping duplicates while keeping
// first-occurrence order.
func (p *Project) SetDeps(deps []string) {
	seen := make(map[string]bool, len(deps))
	result := make([]string, 0, len(deps))
	for _, dep := range deps {
		dep = strings.TrimSpace(dep)
		if dep == "" || seen[dep] {
			continue
		}
		seen[dep] = true
		result = append(result, dep)
	}
	p.Deps = result
}

// TemplateContext builds the rendering context for this project's files.
func (p *Project) TemplateContext() *templates.Context {
	return &templates.Context{
		ProjectName:   p.Name,
		PackageName:   p.PackageName,
		Description:   p.Description,
		Author:        p.Author,
		Email:         p.Email,
		PythonVersion: p.PythonVersion,
		License:       p.License,
		Deps:          p.Deps,
		Year:          time.Now().Year(),
	}
}
