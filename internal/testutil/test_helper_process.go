// Package testutil provides test utilities and helpers for releng tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
}

// Environment variable names used by TestHelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
)

// TestHelperProcess implements the helper process pattern for mocking
// subprocesses. When the test binary is re-invoked with
// GO_WANT_HELPER_PROCESS=1, it behaves as the mock subprocess and exits
// without returning; otherwise it returns immediately.
//
// Usage in a test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
//
// A test then sets the env vars (t.Setenv propagates into os.Environ) and
// runs os.Args[0] with -test.run=TestHelperProcess in place of the real
// command.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	config := parseHelperConfig()
	runHelperProcess(config)
	// runHelperProcess calls os.Exit, so this line is never reached
}

// HelperEnvConfig encodes a HelperProcessConfig for EnvHelperProcessConfig.
func HelperEnvConfig(t *testing.T, config HelperProcessConfig) string {
	t.Helper()
	data, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("marshaling helper process config: %v", err)
	}
	return string(data)
}

// parseHelperConfig parses HelperProcessConfig from the environment.
func parseHelperConfig() HelperProcessConfig {
	config := HelperProcessConfig{}
	configJSON := os.Getenv(EnvHelperProcessConfig)
	if configJSON != "" {
		// Ignore parse errors; use defaults on failure
		_ = json.Unmarshal([]byte(configJSON), &config)
	}
	return config
}

// runHelperProcess executes the helper process behavior and always exits.
func runHelperProcess(config HelperProcessConfig) {
	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}

	os.Exit(config.ExitCode)
}
