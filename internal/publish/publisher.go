// Package publish mirrors demo apps to their external repositories via the
// copybara migration tool. The flow is a linear sequence of fail-fast stages;
// filesystem side effects (netrc credentials, pinned version files) are
// registered for cleanup before they happen, so a failed run never leaves the
// working tree or credential store modified.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/viaduct-dev/releng/internal/config"
	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/git"
	"github.com/viaduct-dev/releng/internal/output"
)

// noOpExitCode is copybara's exit code when there is nothing to sync.
// Treated as success.
const noOpExitCode = 4

// releaseBranch matches the release branch naming convention and captures
// the embedded version.
var releaseBranch = regexp.MustCompile(`^release/v(\d+\.\d+\.\d+)$`)

// ReleaseVersion extracts the version from a release branch name.
// Returns false when the branch does not follow the convention.
func ReleaseVersion(branch string) (string, bool) {
	m := releaseBranch.FindStringSubmatch(branch)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MigrationError reports a migration tool run that exited with a failure code.
type MigrationError struct {
	App  string
	Code int
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("failed to sync %s (exit code: %d)", e.App, e.Code)
}

// Publisher mirrors one demo app to its external repository.
type Publisher struct {
	App  string
	Repo string // owner/name

	Config *config.Configuration
	Runner Runner
	Out    io.Writer

	// Getenv is injected for CI detection and token lookup in tests.
	Getenv func(string) string
	// NetrcPath is the credential file edited in CI mode.
	NetrcPath string
	// RepoRoot is the source repository root.
	RepoRoot string
	// BranchFunc returns the current branch of the source repository.
	BranchFunc func() (string, error)
	// ShowProgress enables a spinner during the buffered build stage.
	// Only meaningful when stdout is a terminal.
	ShowProgress bool

	isCI     bool
	token    string
	cleanups []func() error
}

// New builds a Publisher wired to the real environment: go-git for branch and
// root detection, os/exec for subprocesses, ~/.netrc for credentials.
func New(app, repo string, cfg *config.Configuration) (*Publisher, error) {
	root, err := git.RepositoryRoot("")
	if err != nil {
		return nil, fmt.Errorf("locating repository root: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}

	return &Publisher{
		App:        app,
		Repo:       repo,
		Config:     cfg,
		Runner:     &ExecRunner{},
		Out:        os.Stdout,
		Getenv:     os.Getenv,
		NetrcPath:  filepath.Join(home, ".netrc"),
		RepoRoot:   root,
		BranchFunc: func() (string, error) { return git.CurrentBranch("") },
	}, nil
}

// Publish runs the full publish flow. Cleanup of any filesystem side effects
// is guaranteed regardless of the outcome.
func (p *Publisher) Publish(ctx context.Context) (err error) {
	defer p.runCleanups()

	version, err := p.verifyReleaseBranch()
	if err != nil {
		return err
	}

	if err := p.verifyAppVersion(version); err != nil {
		return err
	}

	if err := p.verifyIndependentBuild(ctx); err != nil {
		return err
	}

	if err := p.resolveAuthentication(); err != nil {
		return err
	}

	if err := p.pinVersion(version); err != nil {
		return err
	}

	return p.runMigration(ctx)
}

// verifyReleaseBranch checks the branch naming convention and returns the
// embedded version.
func (p *Publisher) verifyReleaseBranch() (string, error) {
	branch, err := p.BranchFunc()
	if err != nil {
		return "", fmt.Errorf("determining current branch: %w", err)
	}

	version, ok := ReleaseVersion(branch)
	if !ok {
		return "", errors.NotOnReleaseBranch(branch)
	}

	output.PrintSuccess(p.Out, fmt.Sprintf("Running on release branch: %s", branch))
	return version, nil
}

// verifyAppVersion checks that the app's pinned version matches the branch.
// Runs before any mutation.
func (p *Publisher) verifyAppVersion(branchVersion string) error {
	pinned, err := ReadPinnedVersion(p.propsPath())
	if err != nil {
		return errors.NewPrerequisiteError(err.Error(),
			fmt.Sprintf("Check that %s exists and declares viaductVersion", p.propsPath()))
	}

	if pinned != branchVersion {
		return errors.VersionMismatch(p.App, branchVersion, pinned)
	}

	output.PrintSuccess(p.Out, fmt.Sprintf("Version matches branch: %s", branchVersion))
	return nil
}

// verifyIndependentBuild checks that the demo app builds on its own.
// Build output is buffered and surfaced only on failure.
func (p *Publisher) verifyIndependentBuild(ctx context.Context) error {
	output.PrintStageHeader(p.Out, p.App, "Verifying independent build")

	if p.ShowProgress {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " building " + p.App
		s.Start()
		defer s.Stop()
	}

	var stdout, stderr bytes.Buffer
	code, err := p.Runner.Run(ctx, p.appDir(), "./gradlew", []string{"build", "--no-daemon"}, &stdout, &stderr)
	if err != nil {
		return fmt.Errorf("running gradle build for %s: %w", p.App, err)
	}
	if code != 0 {
		fmt.Fprintf(p.Out, "stdout: %s\nstderr: %s\n", stdout.String(), stderr.String())
		return errors.NewRuntimeError(
			fmt.Sprintf("%s failed to build independently (exit code: %d)", p.App, code),
			fmt.Sprintf("Run './gradlew build' in %s to reproduce", p.appDir()),
		)
	}

	output.PrintSuccess(p.Out, fmt.Sprintf("%s builds successfully", p.App))
	return nil
}

// resolveAuthentication picks the auth mode and, in CI, injects temporary
// credentials into the netrc file with cleanup registered first.
func (p *Publisher) resolveAuthentication() error {
	p.isCI = DetectCI(p.Getenv)
	p.token = p.Getenv(p.Config.TokenEnv)

	if !p.isCI {
		// Local execution uses SSH keys; no credential file is touched.
		fmt.Fprintf(p.Out, "Using SSH (local) for %s\n", p.destinationURL())
		return nil
	}

	if p.token == "" {
		return errors.MissingAccessToken(p.Config.TokenEnv)
	}

	fmt.Fprintf(p.Out, "Using HTTPS with token (CI) for %s\n", p.destinationURL())

	p.addCleanup(func() error { return StripNetrcAccess(p.NetrcPath) })
	return AppendNetrcAccess(p.NetrcPath, p.token)
}

// pinVersion rewrites the app's version property, registering the revert first.
func (p *Publisher) pinVersion(version string) error {
	fmt.Fprintf(p.Out, "Pinning %s to published version %s\n", p.App, version)

	props := p.propsPath()
	p.addCleanup(func() error {
		code, err := p.Runner.Run(context.Background(), p.RepoRoot, "git", []string{"checkout", "--", props}, io.Discard, io.Discard)
		if err != nil {
			return err
		}
		if code != 0 {
			return fmt.Errorf("git checkout -- %s exited with %d", props, code)
		}
		return nil
	})

	return PinVersion(props, version)
}

// runMigration invokes the migration tool and interprets its exit code.
func (p *Publisher) runMigration(ctx context.Context) error {
	workflow := "viaduct-to-" + p.App
	sourceRepo := "file://" + p.RepoRoot

	fmt.Fprintf(p.Out, "Running migration for %s (workflow: %s)\n", p.App, workflow)
	fmt.Fprintf(p.Out, "Source: %s\nDestination: %s\n", sourceRepo, p.destinationURL())
	output.PrintExecutingCommand(p.Out, p.Config.MigrationCmd+" migrate "+workflow)

	args := []string{
		"migrate",
		filepath.Join(p.RepoRoot, p.Config.MigrationConfig),
		workflow,
		"--git-destination-url=" + p.authenticatedDestinationURL(),
		"--git-committer-email", p.Config.CommitterEmail,
		"--git-committer-name", p.Config.CommitterName,
		"--force", // migrate even if the last revision cannot be found
	}

	code, err := p.Runner.Run(ctx, p.RepoRoot, filepath.Join(p.RepoRoot, p.Config.MigrationCmd), args, p.Out, os.Stderr)
	if err != nil {
		return fmt.Errorf("running migration tool: %w", err)
	}

	if code == 0 || code == noOpExitCode {
		output.PrintSuccess(p.Out, fmt.Sprintf("Synced %s to %s", p.App, p.Repo))
		return nil
	}

	return &MigrationError{App: p.App, Code: code}
}

// destinationURL is the loggable destination without credentials.
func (p *Publisher) destinationURL() string {
	if p.isCI {
		return "https://github.com/" + p.Repo + ".git"
	}
	return "git@github.com:" + p.Repo + ".git"
}

// authenticatedDestinationURL injects the token at invocation time so the
// credential never lands in config or logs.
func (p *Publisher) authenticatedDestinationURL() string {
	url := p.destinationURL()
	if p.isCI && p.token != "" {
		return strings.Replace(url, "https://", "https://x-access-token:"+p.token+"@", 1)
	}
	return url
}

func (p *Publisher) appDir() string {
	return filepath.Join(p.RepoRoot, p.Config.DemoAppsDir, p.App)
}

func (p *Publisher) propsPath() string {
	return filepath.Join(p.appDir(), "gradle.properties")
}

func (p *Publisher) addCleanup(fn func() error) {
	p.cleanups = append(p.cleanups, fn)
}

// runCleanups reverts side effects in reverse registration order.
// Failures are reported but never mask the publish result.
func (p *Publisher) runCleanups() {
	for i := len(p.cleanups) - 1; i >= 0; i-- {
		if err := p.cleanups[i](); err != nil {
			fmt.Fprintf(p.Out, "Warning: cleanup failed: %v\n", err)
		}
	}
	p.cleanups = nil
}
