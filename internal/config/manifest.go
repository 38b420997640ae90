package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// publishManifest is the on-disk shape of .releng/publish-targets.yml.
type publishManifest struct {
	Targets []PublishTarget `yaml:"targets"`
}

// LoadTargets returns the publish targets, preferring the project manifest
// over the merged configuration when one exists. The manifest lets the docs
// and release pipelines share a target list without duplicating config.
func LoadTargets(cfg *Configuration) ([]PublishTarget, error) {
	return loadTargetsFrom(cfg, ProjectManifestPath())
}

func loadTargetsFrom(cfg *Configuration, manifestPath string) ([]PublishTarget, error) {
	if !fileExists(manifestPath) {
		return cfg.Targets, nil
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading publish manifest %s: %w", manifestPath, err)
	}

	var m publishManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing publish manifest %s: %w", manifestPath, err)
	}

	if len(m.Targets) == 0 {
		return nil, fmt.Errorf("publish manifest %s declares no targets", manifestPath)
	}

	for i, t := range m.Targets {
		if t.App == "" || t.Repo == "" {
			return nil, fmt.Errorf("publish manifest %s: targets[%d] needs both app and repo", manifestPath, i)
		}
	}

	return m.Targets, nil
}
