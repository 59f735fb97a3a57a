package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// RequiredVars defines which context fields each template requires.
// Templates not listed here require no specific context fields.
var RequiredVars = map[string][]string{
	"README.md":        {"ProjectName"},
	"pyproject.toml":   {"ProjectName", "PythonVersion"},
	"setup.py":         {"ProjectName", "PythonVersion"},
	"requirements.txt": {},
	"gitignore":        {},
	"core.py":          {"PackageName"},
	"utils.py":         {"PackageName"},
	"test_core.py":     {"PackageName"},
	"notebook.ipynb":   {"PackageName"},
	"docs_readme.md":   {"ProjectName"},
}

// Render renders the named template using the provided context.
func Render(name string, ctx *Context) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("template context is nil")
	}

	content, err := GetTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// GetRequiredVars returns the list of required context fields for a template.
// Returns an empty slice if the template has no specific requirements.
func GetRequiredVars(name string) []string {
	if vars, ok := RequiredVars[name]; ok {
		return vars
	}
	return []string{}
}

// ValidateRequirements checks that the context contains all required fields
// for the given template. Returns an error listing missing fields if any.
func ValidateRequirements(name string, ctx *Context) error {
	if ctx == nil {
		return fmt.Errorf("template context is nil")
	}

	var missing []string
	for _, field := range GetRequiredVars(name) {
		if !hasContextField(ctx, field) {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required context for %s: %s", name, strings.Join(missing, ", "))
	}

	return nil
}

// hasContextField checks if a context field is populated.
func hasContextField(ctx *Context, field string) bool {
	switch field {
	case "ProjectName":
		return ctx.ProjectName != ""
	case "PackageName":
		return ctx.PackageName != ""
	case "PythonVersion":
		return ctx.PythonVersion != ""
	case "License":
		return ctx.License != ""
	case "Year":
		return ctx.Year != 0
	default:
		return false
	}
}

// RenderAndValidate renders a template after validating all requirements.
// This is the primary entry point for project-file rendering.
func RenderAndValidate(name string, ctx *Context) ([]byte, error) {
	if err := ValidateRequirements(name, ctx); err != nil {
		return nil, err
	}
	return Render(name, ctx)
}
