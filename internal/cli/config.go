package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viaduct-dev/releng/internal/config"
	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/output"
)

var configForceFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage releng configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented project config to .releng/config.yml",
	Long: `Write a fully commented configuration template to .releng/config.yml.

The template documents every option with its default value. Existing files
are not overwritten unless --force is given.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForceFlag, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !configForceFlag {
		return errors.NewArgumentError(
			fmt.Sprintf("%s already exists", path),
			"Pass --force to overwrite it",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path))
	return nil
}
