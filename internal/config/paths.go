package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/releng/config.yml
// - macOS: ~/Library/Application Support/releng/config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "releng", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .releng/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".releng", "config.yml")
}

// ProjectManifestPath returns the path to the optional publish-target manifest.
func ProjectManifestPath() string {
	return filepath.Join(".releng", "publish-targets.yml")
}
