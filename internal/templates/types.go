// Package templates provides embedded project-file templates and rendering.
// Templates use Go text/template syntax with fields from Context.
package templates

import (
	"fmt"
	"strings"
)

// Context contains the values injected into project-file templates.
// These fields map to template variables: {{.ProjectName}}, {{.PackageName}}, etc.
type Context struct {
	ProjectName   string   // Project name as given on the command line
	PackageName   string   // Normalized Python package identifier
	Description   string   // Short project description
	Author        string   // Author name (empty allowed; templates substitute a placeholder)
	Email         string   // Author email
	PythonVersion string   // Python version requirement (e.g., ">=3.8")
	License       string   // License identifier, or "None"
	Deps          []string // Initial dependencies for requirements.txt and pyproject.toml
	Year          int      // Copyright year
}

// AuthorOrPlaceholder returns the author name, or a placeholder when unset,
// matching the generated README contact section.
func (c *Context) AuthorOrPlaceholder() string {
	if c.Author != "" {
		return c.Author
	}
	return "Your Name"
}

// EmailOrPlaceholder returns the author email, or a placeholder when unset.
func (c *Context) EmailOrPlaceholder() string {
	if c.Email != "" {
		return c.Email
	}
	return "your.email@example.com"
}

// HasLicense reports whether a license file and metadata should be generated.
func (c *Context) HasLicense() bool {
	return c.License != "" && c.License != "None"
}

// DepsTOML renders the dependency list as a TOML array body for pyproject.toml.
func (c *Context) DepsTOML() string {
	quoted := make([]string, 0, len(c.Deps))
	for _, dep := range c.Deps {
		quoted = append(quoted, fmt.Sprintf("%q", dep))
	}
	return strings.Join(quoted, ",\n    ")
}
