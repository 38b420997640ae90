package config

import "fmt"

// Validate checks that a merged configuration is usable.
func Validate(cfg *Configuration) error {
	if cfg.SnippetLines < 1 {
		return fmt.Errorf("snippet_lines must be at least 1, got %d", cfg.SnippetLines)
	}
	if cfg.TokenEnv == "" {
		return fmt.Errorf("token_env must not be empty")
	}
	if cfg.MigrationCmd == "" {
		return fmt.Errorf("migration_cmd must not be empty")
	}
	for i, t := range cfg.Targets {
		if t.App == "" || t.Repo == "" {
			return fmt.Errorf("targets[%d]: app and repo are both required", i)
		}
	}
	return nil
}
