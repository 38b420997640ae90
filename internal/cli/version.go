package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viaduct-dev/releng/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print releng version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "releng %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
		if version.IsDevBuild() {
			fmt.Fprintln(cmd.OutOrStdout(), "development build, not a release")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
