package changelog

import (
	"regexp"
	"strings"
)

// metadataPatterns match internal trailers scrubbed from published changelog
// text. Issue references (Closes #N, Fixes #N) are deliberately not matched.
var metadataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+Github-Change-Id:\s+\w+`),
	regexp.MustCompile(`(?i)\s+GitOrigin-RevId:\s+[a-f0-9]+`),
}

// ShouldInclude reports whether a commit subject belongs in the changelog.
// Subjects starting with "ignore:" (any case) are dropped entirely.
func ShouldInclude(subject string) bool {
	return !strings.HasPrefix(strings.ToLower(subject), "ignore:")
}

// CleanMessage strips internal metadata trailers from a commit message
// while preserving issue references.
func CleanMessage(message string) string {
	cleaned := message
	for _, p := range metadataPatterns {
		cleaned = p.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}

// ReplaceSourceMarker substitutes the internal marker token with the short
// commit hash, matched case-insensitively.
func ReplaceSourceMarker(message, marker, sha string) string {
	if marker == "" {
		return message
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(marker))
	return re.ReplaceAllString(message, "("+sha+")")
}
