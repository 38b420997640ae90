package publish

// ciIndicators are environment variables whose presence marks a CI run.
var ciIndicators = []string{
	"CI",             // Generic CI indicator
	"GITHUB_ACTIONS", // GitHub Actions
	"JENKINS_HOME",   // Jenkins
	"CIRCLECI",       // CircleCI
	"TRAVIS",         // Travis CI
	"GITLAB_CI",      // GitLab CI
	"BUILDKITE",      // Buildkite
}

// DetectCI reports whether the process is running in a CI environment.
// The getenv function is injected so detection is testable.
func DetectCI(getenv func(string) string) bool {
	for _, name := range ciIndicators {
		if getenv(name) != "" {
			return true
		}
	}
	return false
}
