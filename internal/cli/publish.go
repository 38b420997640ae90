package cli

import (
	"github.com/spf13/cobra"
	"github.com/viaduct-dev/releng/internal/config"
	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/output"
	"github.com/viaduct-dev/releng/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish <demoapp-name> <owner/repo>",
	Short: "Mirror one demo app to its external repository",
	Long: `Publish a demo app subdirectory to an external GitHub repository via
the copybara migration tool.

Must be run on a release branch (release/vX.Y.Z). The demo app's pinned
viaductVersion must match the branch version, and the app must build
independently, before anything is pushed.

Authentication:
  - CI: HTTPS with a token from the configured environment variable
  - Local: SSH keys

Examples:
  releng publish starwars viaduct-dev/starwars`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(projectConfigFlag(cmd))
	if err != nil {
		return errors.NewConfigError(err.Error())
	}

	p, err := publish.New(args[0], args[1], cfg)
	if err != nil {
		return err
	}
	p.Out = cmd.OutOrStdout()
	p.ShowProgress = output.IsTTY()

	return p.Publish(cmd.Context())
}
