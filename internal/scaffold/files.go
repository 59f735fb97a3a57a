package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/raveheart1/labinit/internal/templates"
)

// fileSpec maps one embedded template to its output location in the project.
type fileSpec struct {
	Template string // template name (without .tmpl)
	RelPath  string // output path relative to the project root
}

// fileSpecs returns the project files to generate for the given package name,
// in display order for --dry-run.
func fileSpecs(packageName string) []fileSpec {
	return []fileSpec{
		{Template: "README.md", RelPath: "README.md"},
		{Template: "gitignore", RelPath: ".gitignore"},
		{Template: "pyproject.toml", RelPath: "pyproject.toml"},
		{Template: "setup.py", RelPath: "setup.py"},
		{Template: "requirements.txt", RelPath: "requirements.txt"},
		{Template: "core.py", RelPath: filepath.Join("src", packageName, "core.py")},
		{Template: "utils.py", RelPath: filepath.Join("src", packageName, "utils.py")},
		{Template: "test_core.py", RelPath: filepath.Join("tests", "test_core.py")},
		{Template: "notebook.ipynb", RelPath: filepath.Join("notebooks", "sample_notebook.ipynb")},
		{Template: "docs_readme.md", RelPath: filepath.Join("docs", "README.md")},
	}
}

// GenerateFiles renders every project file from its template and writes it
// under the project root. Files are independent of each other, so rendering
// and writing happen concurrently.
func GenerateFiles(p *Project) ([]string, error) {
	ctx := p.TemplateContext()
	specs := fileSpecs(p.PackageName)

	var g errgroup.Group
	for _, spec := range specs {
		g.Go(func() error {
			content, err := templates.RenderAndValidate(spec.Template, ctx)
			if err != nil {
				return err
			}

			target := filepath.Join(p.Path, spec.RelPath)
			if err := os.WriteFile(target, content, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", spec.RelPath, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(specs))
	for _, spec := range specs {
		written = append(written, spec.RelPath)
	}
	return written, nil
}
