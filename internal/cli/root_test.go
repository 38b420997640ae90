package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/publish"
)

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":           {nil, ExitSuccess},
		"plain error":   {fmt.Errorf("boom"), ExitFailure},
		"argument":      {errors.NewArgumentError("bad args"), ExitInvalidArguments},
		"configuration": {errors.NewConfigError("bad config"), ExitConfigError},
		"prerequisite":  {errors.NewPrerequisiteError("not on branch"), ExitPrerequisiteFailed},
		"runtime":       {errors.NewRuntimeError("failed"), ExitFailure},
		"migration propagates tool code": {
			&publish.MigrationError{App: "starwars", Code: 9}, 9,
		},
		"wrapped migration error": {
			fmt.Errorf("publishing: %w", &publish.MigrationError{App: "starwars", Code: 7}), 7,
		},
		"wrapped cli error": {
			fmt.Errorf("loading: %w", errors.NewConfigError("bad config")), ExitConfigError,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "releng")
	assert.Contains(t, out.String(), "commit")
}

func TestConfigInit(t *testing.T) {
	// t.Chdir requires Go 1.24; this is the equivalent for older toolchains.
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"config", "init"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), ".releng")

	content, err := os.ReadFile(filepath.Join(".releng", "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "source_marker")
	assert.Contains(t, string(content), "targets:")

	// A second run refuses to overwrite without --force.
	rootCmd.SetArgs([]string{"config", "init"})
	err = rootCmd.Execute()
	require.Error(t, err)

	var cliErr *errors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Contains(t, cliErr.Remediation[0], "--force")
}

func TestChangelogRequiresBothRefs(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"changelog", "v0.6.0"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)

	var cliErr *errors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}
