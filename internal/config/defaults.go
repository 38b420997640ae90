package config

// GetDefaults returns the default configuration values.
// These match the checked-in release automation: the viaduct-dev demo apps,
// the shared copybara config, and the bot accounts filtered from changelogs.
func GetDefaults() map[string]any {
	return map[string]any{
		"bots":             []string{"noreply", "no-reply", "github-actions", "viaductbot"},
		"source_marker":    "(AIRBNB)",
		"token_env":        "VIADUCT_GRAPHQL_GITHUB_ACCESS_TOKEN",
		"demoapps_dir":     "demoapps",
		"migration_cmd":    "tools/copybara/run",
		"migration_config": ".github/copybara/copy.bara.sky",
		"committer_name":   "ViaBot",
		"committer_email":  "viabot@ductworks.io",
		"link_base":        "https://github.com/airbnb/viaduct/tree/master",
		"docs_dir":         "docs",
		"snippet_lines":    10,
		"targets": []map[string]any{
			{"app": "starwars", "repo": "viaduct-dev/starwars"},
			{"app": "cli-starter", "repo": "viaduct-dev/cli-starter"},
			{"app": "ktor-starter", "repo": "viaduct-dev/ktor-starter"},
		},
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# releng configuration
# Overrides: environment (RELENG_*) > .releng/config.yml > user config > defaults

# Changelog settings
bots: [noreply, no-reply, github-actions, viaductbot]  # Emails never credited
source_marker: "(AIRBNB)"             # Replaced by the short commit hash

# Publisher settings
token_env: VIADUCT_GRAPHQL_GITHUB_ACCESS_TOKEN  # Access token variable (CI)
demoapps_dir: demoapps                # Demo app subdirectories
migration_cmd: tools/copybara/run     # Migration tool entrypoint
migration_config: .github/copybara/copy.bara.sky
committer_name: ViaBot
committer_email: viabot@ductworks.io

# Doc snippet settings
link_base: https://github.com/airbnb/viaduct/tree/master
docs_dir: docs
snippet_lines: 10                     # Default lines per tagged snippet

# Demo apps published by 'releng publish-all'
targets:
  - app: starwars
    repo: viaduct-dev/starwars
  - app: cli-starter
    repo: viaduct-dev/cli-starter
  - app: ktor-starter
    repo: viaduct-dev/ktor-starter
`
}
