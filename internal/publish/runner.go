package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner is the subprocess boundary for the publisher. Keeping it narrow
// makes every stage testable without git, gradle, or the migration tool.
type Runner interface {
	// Run executes a command in dir, streaming output to the given writers,
	// and returns its exit code. A non-zero exit code is not an error; err
	// is reserved for failures to start the process. Nil writers discard.
	Run(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) (int, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
