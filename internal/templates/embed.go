package templates

import (
	"embed"
	"strings"
)

// TemplateFS embeds all project-file templates. Each template renders one
// file of the generated research project.
//
//go:embed all:*.tmpl
var TemplateFS embed.FS

// GetTemplateNames returns a list of all embedded template names (without extension).
func GetTemplateNames() ([]string, error) {
	entries, err := TemplateFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".tmpl") {
			names = append(names, strings.TrimSuffix(name, ".tmpl"))
		}
	}
	return names, nil
}

// GetTemplate retrieves a template by name (without extension).
func GetTemplate(name string) ([]byte, error) {
	return TemplateFS.ReadFile(name + ".tmpl")
}
