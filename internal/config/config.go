// Package config provides hierarchical configuration management for labinit
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.labinit/config.yml) > user config (~/.config/labinit/config.yml)
// > defaults. Legacy JSON configs are still read, with migration utilities for
// transitioning to YAML.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the labinit CLI tool configuration.
// Every value is a default for `labinit new` and can be overridden per
// invocation with flags.
type Configuration struct {
	// Author is the default author name written into generated metadata.
	Author string `koanf:"author" yaml:"author"`

	// Email is the default author email.
	Email string `koanf:"email" yaml:"email"`

	// License is the default license identifier for generated projects.
	License string `koanf:"license" yaml:"license" validate:"omitempty,oneof=MIT Apache-2.0 GPL-3.0 BSD-3-Clause None"`

	// PythonVersion is the default requires-python constraint.
	PythonVersion string `koanf:"python_version" yaml:"python_version"`

	// Deps are the default initial dependencies.
	Deps []string `koanf:"deps" yaml:"deps"`

	// Venv controls whether a virtual environment is created by default.
	Venv bool `koanf:"venv" yaml:"venv"`

	// Git controls whether a git repository is initialized by default.
	Git bool `koanf:"git" yaml:"git"`

	// VenvTimeout bounds venv creation plus dependency install, in seconds.
	// 0 disables the timeout.
	VenvTimeout int `koanf:"venv_timeout" yaml:"venv_timeout" validate:"gte=0,lte=7200"`

	// SkipConfirmations skips interactive prompts (also via LABINIT_YES env var).
	SkipConfirmations bool `koanf:"skip_confirmations" yaml:"skip_confirmations"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .labinit/config.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads user-level config (YAML preferred, legacy JSON supported).
// Priority: YAML (~/.config/labinit/config.yml) > JSON (~/.labinit/config.json).
// Warns if both exist (YAML used, JSON ignored) or if only legacy JSON exists.
func loadUserConfig(k *koanf.Koanf, warningWriter io.Writer, skipWarnings bool) error {
	userYAMLPath, _ := UserConfigPath()
	legacyUserPath, _ := LegacyUserConfigPath()

	userYAMLExists := fileExists(userYAMLPath)
	legacyUserExists := fileExists(legacyUserPath)

	if userYAMLExists {
		if err := loadYAMLConfig(k, userYAMLPath, "user"); err != nil {
			return fmt.Errorf("loading user YAML config: %w", err)
		}
		warnLegacyExists(warningWriter, legacyUserPath, userYAMLPath, legacyUserExists, skipWarnings, "--user")
	} else if legacyUserExists {
		if err := loadLegacyJSONConfig(k, legacyUserPath, "user", warningWriter, skipWarnings, "--user"); err != nil {
			return fmt.Errorf("loading legacy user JSON config: %w", err)
		}
	}
	return nil
}

// loadProjectConfig loads project-level config with the same priority and
// warning logic as loadUserConfig. Supports a custom path override (for tests).
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	projectYAMLPath := ProjectConfigPath()
	if customPath != "" {
		projectYAMLPath = customPath
	}
	legacyProjectPath := LegacyProjectConfigPath()

	projectYAMLExists := fileExists(projectYAMLPath)
	legacyProjectExists := fileExists(legacyProjectPath)

	if projectYAMLExists {
		if err := loadYAMLConfig(k, projectYAMLPath, "project"); err != nil {
			return fmt.Errorf("loading project YAML config: %w", err)
		}
		warnLegacyExists(warningWriter, legacyProjectPath, projectYAMLPath, legacyProjectExists, skipWarnings, "--project")
	} else if legacyProjectExists {
		if err := loadLegacyJSONConfig(k, legacyProjectPath, "project", warningWriter, skipWarnings, "--project"); err != nil {
			return fmt.Errorf("loading legacy project JSON config: %w", err)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadLegacyJSONConfig loads legacy JSON and warns about migration.
func loadLegacyJSONConfig(k *koanf.Koanf, path, configType string, warningWriter io.Writer, skipWarnings bool, migrateFlag string) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load legacy %s config %s: %w", configType, path, err)
	}
	if !skipWarnings {
		fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", path)
		fmt.Fprintf(warningWriter, "  Run 'labinit config migrate %s' to migrate to YAML format.\n\n", migrateFlag)
	}
	return nil
}

// warnLegacyExists warns if legacy JSON exists alongside new YAML.
func warnLegacyExists(warningWriter io.Writer, legacyPath, yamlPath string, legacyExists, skipWarnings bool, migrateFlag string) {
	if legacyExists && !skipWarnings {
		fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", legacyPath, yamlPath)
		fmt.Fprintf(warningWriter, "  Run 'labinit config migrate %s' to remove the legacy file.\n\n", migrateFlag)
	}
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("LABINIT_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("LABINIT_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: LABINIT_PYTHON_VERSION -> python_version
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "LABINIT_"))
}
