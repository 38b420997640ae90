// Package config provides hierarchical configuration management for releng using koanf.
// Configuration is loaded with priority: environment variables > project config
// (.releng/config.yml) > user config (~/.config/releng/config.yml) > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// PublishTarget is a (demo app, destination repository) pair.
type PublishTarget struct {
	App  string `koanf:"app" yaml:"app"`
	Repo string `koanf:"repo" yaml:"repo"`
}

// Configuration represents the releng CLI tool configuration.
type Configuration struct {
	// Bots lists email local-parts that never resolve to an author handle.
	Bots []string `koanf:"bots"`

	// SourceMarker is the internal marker token replaced by the short commit
	// hash in changelog subjects. Matched case-insensitively.
	SourceMarker string `koanf:"source_marker"`

	// TokenEnv names the environment variable holding the access token used
	// for HTTPS pushes in CI.
	TokenEnv string `koanf:"token_env"`

	// DemoAppsDir is the directory containing demo apps, relative to the repo root.
	DemoAppsDir string `koanf:"demoapps_dir"`

	// MigrationCmd is the migration tool entrypoint, relative to the repo root.
	MigrationCmd string `koanf:"migration_cmd"`

	// MigrationConfig is the migration tool config path, relative to the repo root.
	MigrationConfig string `koanf:"migration_config"`

	// CommitterName and CommitterEmail identify the bot committing migrated changes.
	CommitterName  string `koanf:"committer_name"`
	CommitterEmail string `koanf:"committer_email"`

	// LinkBase is the URL prefix for "view full file" links in doc snippets.
	LinkBase string `koanf:"link_base"`

	// DocsDir is the docs tree used as the secondary snippet lookup root.
	DocsDir string `koanf:"docs_dir"`

	// SnippetLines is the default number of lines a tagged snippet includes.
	SnippetLines int `koanf:"snippet_lines"`

	// Targets lists the demo apps published by publish-all.
	Targets []PublishTarget `koanf:"targets"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .releng/config.yml)
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config if present.
func loadUserConfig(k *koanf.Koanf) error {
	userPath, err := UserConfigPath()
	if err != nil {
		return nil
	}
	if !fileExists(userPath) {
		return nil
	}
	if err := k.Load(file.Provider(userPath), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", userPath, err)
	}
	return nil
}

// loadProjectConfig loads the project-level YAML config if present.
// Supports a custom path override (for testing).
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	projectPath := ProjectConfigPath()
	if customPath != "" {
		projectPath = customPath
	}
	if !fileExists(projectPath) {
		return nil
	}
	if err := k.Load(file.Provider(projectPath), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load project config %s: %w", projectPath, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("RELENG_", ".", envTransform), nil); err != nil {
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

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: RELENG_TOKEN_ENV -> token_env
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELENG_"))
}

// fileExists checks whether a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
