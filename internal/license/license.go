// Package license provides embedded license texts for generated projects.
// Supported licenses match the original pyresearch-init choices: MIT,
// Apache-2.0, GPL-3.0, BSD-3-Clause, plus "None" to skip the LICENSE file.
package license

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed texts/*.tmpl
var licenseFS embed.FS

// None is the identifier that disables LICENSE file generation.
const None = "None"

// Info describes a supported license.
type Info struct {
	ID          string
	Description string
}

// Supported lists the license identifiers accepted by `labinit new --license`,
// in display order.
func Supported() []Info {
	return []Info{
		{ID: "MIT", Description: "Permissive, short and simple"},
		{ID: "Apache-2.0", Description: "Permissive, includes an express patent grant"},
		{ID: "GPL-3.0", Description: "Copyleft, derivatives must stay open"},
		{ID: "BSD-3-Clause", Description: "Permissive, no endorsement clause"},
		{ID: None, Description: "Do not generate a LICENSE file"},
	}
}

// IsSupported reports whether id names a supported license (including None).
func IsSupported(id string) bool {
	for _, info := range Supported() {
		if info.ID == id {
			return true
		}
	}
	return false
}

// renderContext carries the substitutions for license templates.
type renderContext struct {
	Year   int
	Author string
}

// Render returns the license text for the given identifier with year and
// author substituted. An empty author falls back to a placeholder. Returns
// an error for unsupported identifiers and for None, which has no text.
func Render(id string, year int, author string) ([]byte, error) {
	if id == None {
		return nil, fmt.Errorf("license %q has no text", None)
	}
	if !IsSupported(id) {
		return nil, fmt.Errorf("unsupported license %q", id)
	}

	content, err := licenseFS.ReadFile("texts/" + id + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading license text %s: %w", id, err)
	}

	if author == "" {
		author = "Your Name"
	}

	tmpl, err := template.New(id).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing license template %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, renderContext{Year: year, Author: author}); err != nil {
		return nil, fmt.Errorf("executing license template %s: %w", id, err)
	}

	return buf.Bytes(), nil
}
