package publish

import (
	"fmt"
	"os"
	"regexp"
)

// The temporary credentials appended to ~/.netrc in CI are fenced with
// markers so cleanup can strip exactly what was added.
const (
	netrcBegin = "# BEGIN TEMP GIT ACCESS"
	netrcEnd   = "# END TEMP GIT ACCESS"
)

var netrcBlock = regexp.MustCompile(`(?s)` + netrcBegin + `\n.*?` + netrcEnd + `\n`)

// AppendNetrcAccess appends a fenced token entry for github.com to the netrc
// file at path and tightens its permissions.
func AppendNetrcAccess(path, token string) error {
	entry := fmt.Sprintf("%s\nmachine github.com\nlogin x-access-token\npassword %s\n%s\n",
		netrcBegin, token, netrcEnd)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("writing credentials to %s: %w", path, err)
	}

	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restricting %s permissions: %w", path, err)
	}

	return nil
}

// StripNetrcAccess removes any fenced token entry from the netrc file at
// path. A missing file is not an error.
func StripNetrcAccess(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cleaned := netrcBlock.ReplaceAll(content, nil)
	if err := os.WriteFile(path, cleaned, 0o600); err != nil {
		return fmt.Errorf("restoring %s: %w", path, err)
	}

	return nil
}
