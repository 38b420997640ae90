package errors

import "fmt"

// Common error messages for the releng CLI.
// These templates ensure consistent, actionable error messages.

// NotOnReleaseBranch creates an error for running a release command outside a release branch.
func NotOnReleaseBranch(current string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("not on a release branch (current branch: %s)", current),
		"Check out a release branch: git checkout release/v<major>.<minor>.<patch>",
		"Release branches must match the pattern release/vX.Y.Z",
	)
}

// VersionMismatch creates an error for a demo app whose pinned version
// disagrees with the release branch.
func VersionMismatch(app, branchVersion, appVersion string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("version mismatch for %s: branch says %s, gradle.properties says %s", app, branchVersion, appVersion),
		fmt.Sprintf("Update demoapps/%s/gradle.properties so viaductVersion matches the branch", app),
	)
}

// MissingAccessToken creates an error for CI runs without the publish token.
func MissingAccessToken(envVar string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("%s environment variable is required in CI", envVar),
		fmt.Sprintf("Export %s with a token that can push to the destination repos", envVar),
	)
}

// MissingChangelogRefs creates an error for a changelog invocation without both refs.
func MissingChangelogRefs() *CLIError {
	return NewArgumentErrorWithUsage(
		"two git references are required",
		"releng changelog <from-ref> <to-ref>",
		"Example: releng changelog v0.6.0 v0.7.0",
	)
}
