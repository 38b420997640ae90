package publish

import (
	"fmt"
	"os"
	"regexp"
)

// versionProperty matches the viaductVersion declaration in a demo app's
// gradle.properties.
var versionProperty = regexp.MustCompile(`(?m)^viaductVersion=(.+)$`)

// ReadPinnedVersion returns the viaductVersion value from the property file.
func ReadPinnedVersion(propsPath string) (string, error) {
	content, err := os.ReadFile(propsPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", propsPath, err)
	}

	m := versionProperty.FindSubmatch(content)
	if m == nil {
		return "", fmt.Errorf("viaductVersion not found in %s", propsPath)
	}

	return string(m[1]), nil
}

// PinVersion rewrites the viaductVersion declaration in place.
func PinVersion(propsPath, version string) error {
	content, err := os.ReadFile(propsPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", propsPath, err)
	}

	if !versionProperty.Match(content) {
		return fmt.Errorf("viaductVersion not found in %s", propsPath)
	}

	updated := versionProperty.ReplaceAll(content, []byte("viaductVersion="+version))
	if err := os.WriteFile(propsPath, updated, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", propsPath, err)
	}

	return nil
}
