package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProps = `# demo app configuration
org.gradle.jvmargs=-Xmx2g
viaductVersion=1.2.3
kotlin.code.style=official
`

func writeProps(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gradle.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadPinnedVersion(t *testing.T) {
	path := writeProps(t, sampleProps)

	version, err := ReadPinnedVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestReadPinnedVersionMissingProperty(t *testing.T) {
	path := writeProps(t, "org.gradle.jvmargs=-Xmx2g\n")

	_, err := ReadPinnedVersion(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "viaductVersion")
}

func TestReadPinnedVersionMissingFile(t *testing.T) {
	_, err := ReadPinnedVersion(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPinVersionRewritesInPlace(t *testing.T) {
	path := writeProps(t, sampleProps)

	require.NoError(t, PinVersion(path, "2.0.0"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "viaductVersion=2.0.0")
	assert.NotContains(t, string(content), "viaductVersion=1.2.3")

	// Surrounding properties survive untouched.
	assert.Contains(t, string(content), "org.gradle.jvmargs=-Xmx2g")
	assert.Contains(t, string(content), "kotlin.code.style=official")
}

func TestPinVersionMissingProperty(t *testing.T) {
	path := writeProps(t, "org.gradle.jvmargs=-Xmx2g\n")

	err := PinVersion(path, "2.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "viaductVersion")
}

func TestPinThenReadRoundTrip(t *testing.T) {
	path := writeProps(t, sampleProps)

	require.NoError(t, PinVersion(path, "3.1.4"))

	version, err := ReadPinnedVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "3.1.4", version)
}
