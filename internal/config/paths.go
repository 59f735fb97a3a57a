package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/labinit/config.yml
// - macOS: ~/Library/Application Support/labinit/config.yml
// - Windows: %APPDATA%\labinit\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "labinit", "config.yml"), nil
}

// UserConfigDir returns the path to the user-level config directory.
func UserConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "labinit"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .labinit/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".labinit", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".labinit"
}

// LegacyUserConfigPath returns the path to the legacy user-level JSON config
// file at ~/.labinit/config.json.
func LegacyUserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".labinit", "config.json"), nil
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON
// config file at .labinit/config.json.
func LegacyProjectConfigPath() string {
	return filepath.Join(".labinit", "config.json")
}
