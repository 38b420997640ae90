// Package cli wires the releng commands: changelog generation, demo-app
// publishing, and doc snippet extraction.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/publish"
	"github.com/viaduct-dev/releng/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "releng",
	Short: "Release engineering automation for viaduct",
	Long: `releng automates the release chores around the viaduct repository:
generating grouped changelogs from git history, mirroring demo apps to
their external repositories, and extracting tagged code snippets for the
generated docs.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to project config file (default .releng/config.yml)")
}

// Execute runs the root command. Errors are printed here (structured errors
// with remediation when available); the caller maps them to an exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		errors.PrintError(cliErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit code.
// Migration failures propagate the migration tool's own exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var migErr *publish.MigrationError
	if stderrors.As(err, &migErr) {
		return migErr.Code
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Configuration:
			return ExitConfigError
		case errors.Prerequisite:
			return ExitPrerequisiteFailed
		}
	}

	return ExitFailure
}

// projectConfigFlag returns the --config override, if any.
func projectConfigFlag(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
