package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {Argument, "Argument Error"},
		"configuration": {Configuration, "Configuration Error"},
		"prerequisite":  {Prerequisite, "Prerequisite Error"},
		"runtime":       {Runtime, "Runtime Error"},
		"unknown":       {ErrorCategory(42), "Error"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.category.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := map[string]struct {
		err          *CLIError
		wantCategory ErrorCategory
	}{
		"argument":      {NewArgumentError("m", "r1"), Argument},
		"configuration": {NewConfigError("m", "r1", "r2"), Configuration},
		"prerequisite":  {NewPrerequisiteError("m"), Prerequisite},
		"runtime":       {NewRuntimeError("m"), Runtime},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.wantCategory, tc.err.Category)
			assert.Equal(t, "m", tc.err.Error())
		})
	}
}

func TestNewArgumentErrorWithUsage(t *testing.T) {
	err := NewArgumentErrorWithUsage("two git references are required",
		"releng changelog <from-ref> <to-ref>",
		"Example: releng changelog v0.6.0 v0.7.0")

	assert.Equal(t, Argument, err.Category)
	assert.Equal(t, "releng changelog <from-ref> <to-ref>", err.Usage)
	require.Len(t, err.Remediation, 1)
}

func TestWrap(t *testing.T) {
	err := Wrap(fmt.Errorf("permission denied"), "reading config")

	assert.Equal(t, Runtime, err.Category)
	assert.Equal(t, "reading config: permission denied", err.Error())
}

func TestFormatErrorPlain(t *testing.T) {
	err := NewArgumentErrorWithUsage("two git references are required",
		"releng changelog <from-ref> <to-ref>",
		"Example: releng changelog v0.6.0 v0.7.0")

	out := FormatErrorPlain(err)

	assert.Contains(t, out, "Error [Argument Error]: two git references are required")
	assert.Contains(t, out, "Usage: releng changelog <from-ref> <to-ref>")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "  • Example: releng changelog v0.6.0 v0.7.0")
}

func TestFormatErrorNil(t *testing.T) {
	assert.Empty(t, FormatError(nil))
	assert.Empty(t, FormatErrorPlain(nil))
}
