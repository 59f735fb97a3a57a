package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Labinit Configuration
# Defaults for 'labinit new'; every value can be overridden with flags.

# Project metadata defaults
author: ""                            # Default author name
email: ""                             # Default author email
license: MIT                          # MIT | Apache-2.0 | GPL-3.0 | BSD-3-Clause | None
python_version: ">=3.8"               # requires-python constraint

# Initial dependencies for requirements.txt and pyproject.toml
deps:
  - numpy
  - pandas
  - matplotlib
  - pytest

# Generation steps
venv: true                            # Create a virtual environment and install deps
git: true                             # Initialize a git repository
venv_timeout: 600                     # Max seconds for venv + install (0 = no timeout)

# Prompts
skip_confirmations: false             # Skip overwrite prompts (also via LABINIT_YES)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"author":         "",
		"email":          "",
		"license":        "MIT",
		"python_version": ">=3.8",
		// Matches the historical pyresearch-init default dependency set.
		"deps":               []string{"numpy", "pandas", "matplotlib", "pytest"},
		"venv":               true,
		"git":                true,
		"venv_timeout":       600, // 10 minutes covers a cold pip cache
		"skip_confirmations": false,
	}
}
