package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitkeepDirs are the data/results leaf directories preserved in git via
// .gitkeep files (their contents are ignored by the generated .gitignore).
var gitkeepDirs = []string{
	filepath.Join("data", "raw"),
	filepath.Join("data", "processed"),
	filepath.Join("results", "figures"),
	filepath.Join("results", "models"),
}

// Directories returns the project-relative directory tree for the given
// package name, in creation order.
func Directories(packageName string) []string {
	return []string{
		"src",
		filepath.Join("src", packageName),
		"notebooks",
		"tests",
		filepath.Join("data", "raw"),
		filepath.Join("data", "processed"),
		filepath.Join("results", "figures"),
		filepath.Join("results", "models"),
		"docs",
	}
}

// CreateLayout creates the directory tree plus the marker files that make it
// usable: .gitkeep in the data/results leaves and __init__.py in the package
// and tests directories.
func CreateLayout(projectPath, packageName string) error {
	for _, dir := range Directories(packageName) {
		if err := os.MkdirAll(filepath.Join(projectPath, dir), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	for _, dir := range gitkeepDirs {
		if err := touch(filepath.Join(projectPath, dir, ".gitkeep")); err != nil {
			return err
		}
	}

	if err := touch(filepath.Join(projectPath, "src", packageName, "__init__.py")); err != nil {
		return err
	}
	if err := touch(filepath.Join(projectPath, "tests", "__init__.py")); err != nil {
		return err
	}

	return nil
}

func touch(path string) error {
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}
