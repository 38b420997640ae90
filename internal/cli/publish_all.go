package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viaduct-dev/releng/internal/config"
	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/git"
	"github.com/viaduct-dev/releng/internal/output"
	"github.com/viaduct-dev/releng/internal/publish"
)

var publishAllCmd = &cobra.Command{
	Use:   "publish-all",
	Short: "Publish every configured demo app to its external repository",
	Long: `Publish all configured demo apps in sequence, aggregating failures.

The target list comes from .releng/publish-targets.yml when present, falling
back to the merged configuration. Must be run on a release branch
(release/vX.Y.Z); each app additionally verifies its own pinned version.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPublishAll,
}

func init() {
	rootCmd.AddCommand(publishAllCmd)
}

func runPublishAll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(projectConfigFlag(cmd))
	if err != nil {
		return errors.NewConfigError(err.Error())
	}

	// Check the branch once up front so a bad invocation fails before the
	// first per-app run spends time building.
	branch, err := git.CurrentBranch("")
	if err != nil {
		return fmt.Errorf("determining current branch: %w", err)
	}
	if _, ok := publish.ReleaseVersion(branch); !ok {
		return errors.NotOnReleaseBranch(branch)
	}

	targets, err := config.LoadTargets(cfg)
	if err != nil {
		return errors.NewConfigError(err.Error())
	}

	out := cmd.OutOrStdout()
	factory := func(app, repo string) (*publish.Publisher, error) {
		p, err := publish.New(app, repo, cfg)
		if err != nil {
			return nil, err
		}
		p.Out = out
		p.ShowProgress = output.IsTTY()
		return p, nil
	}

	failed := publish.All(cmd.Context(), targets, factory, out)
	if len(failed) > 0 {
		return errors.NewRuntimeError(fmt.Sprintf("%d demo app(s) failed to publish", len(failed)))
	}
	return nil
}
