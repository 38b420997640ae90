package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viaduct-dev/releng/internal/changelog"
	"github.com/viaduct-dev/releng/internal/config"
	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/git"
)

var changelogRepoFlag string

var changelogCmd = &cobra.Command{
	Use:   "changelog <from-ref> <to-ref>",
	Short: "Generate a grouped markdown changelog between two git refs",
	Long: `Generate a markdown changelog for the commits in <from-ref>..<to-ref>
(from exclusive, to inclusive).

Commits are classified by conventional-commit type and grouped into sections,
with breaking changes surfaced first. Internal metadata trailers are stripped,
author handles are derived from commit emails, and bot accounts are filtered.

Examples:
  releng changelog v0.6.0 v0.7.0
  releng changelog v0.6.0 HEAD --repo /path/to/checkout`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE:         runChangelog,
}

func init() {
	rootCmd.AddCommand(changelogCmd)

	changelogCmd.Flags().StringVar(&changelogRepoFlag, "repo", "", "Repository to read (default: current directory)")
}

func runChangelog(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.MissingChangelogRefs()
	}
	from, to := args[0], args[1]

	cfg, err := config.Load(projectConfigFlag(cmd))
	if err != nil {
		return errors.NewConfigError(err.Error())
	}

	if changelogRepoFlag != "" && !git.IsRepository(changelogRepoFlag) {
		return errors.NewArgumentError(
			fmt.Sprintf("%s is not a git repository", changelogRepoFlag),
			"Pass --repo a directory inside the checkout to read",
		)
	}

	for _, ref := range []string{from, to} {
		if _, err := git.ResolveRef(changelogRepoFlag, ref); err != nil {
			return errors.NewArgumentError(
				fmt.Sprintf("unknown git reference %q", ref),
				"Check the ref with: git rev-parse "+ref,
			)
		}
	}

	gen := changelog.NewGenerator(changelogRepoFlag, cfg.SourceMarker, cfg.Bots)
	doc, err := gen.Generate(from, to)
	if err != nil {
		return fmt.Errorf("generating changelog: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}
