package cli

// Exit codes for the releng CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic runtime failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitPrerequisiteFailed indicates a required file, tag, or branch was missing
	ExitPrerequisiteFailed = 4

	// ExitConfigError indicates invalid or missing configuration
	ExitConfigError = 5
)
