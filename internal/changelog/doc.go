// Package changelog generates grouped markdown changelogs from git history.
//
// This package implements:
//   - Structured commit collection between two refs via a marker-delimited
//     git log format (NUL record separator, safe against multi-line bodies)
//   - Internal metadata stripping and source-marker substitution
//   - Conventional-commit classification with bump severity
//   - Author handle resolution from commit emails and co-author trailers
//   - Markdown rendering with breaking changes surfaced first
//
// Parsing functions are pure (input text to structured record) so each stage
// is independently testable; only Collector touches the git CLI.
package changelog
