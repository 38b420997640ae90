package changelog

import "strings"

// Commit is the raw commit information extracted from one git log record.
// Immutable once parsed.
type Commit struct {
	SHA          string
	Subject      string
	Body         string
	AuthorEmail  string
	CoAuthorsRaw string
}

// Bump is the semantic-version impact implied by a commit.
type Bump int

const (
	BumpNone Bump = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

// String returns the lowercase bump name.
func (b Bump) String() string {
	switch b {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "none"
	}
}

// Entry is a processed changelog entry with authorship information.
// Type is empty when the commit did not parse as a conventional commit.
type Entry struct {
	SHA                 string
	Type                string
	Scope               string
	Description         string
	Breaking            bool
	BreakingDescription string
	Authors             []string
	Bump                Bump
}

// FormattedAuthors returns the authors as comma-separated handles,
// or "@anonymous" when no author resolved.
func (e Entry) FormattedAuthors() string {
	if len(e.Authors) > 0 {
		return strings.Join(e.Authors, ", ")
	}
	return "@anonymous"
}

// FormattedLine returns the complete rendered entry line body.
func (e Entry) FormattedLine() string {
	return e.Description + " by " + e.FormattedAuthors()
}

// section describes how a change type renders: its sort priority and heading.
type section struct {
	Priority int
	Title    string
}

// changeTypes is the fixed priority table for known conventional-commit types.
// Unrecognized types render last with a titleized heading.
var changeTypes = map[string]section{
	"feat":     {1, "Features"},
	"fix":      {2, "Bug Fixes"},
	"perf":     {3, "Performance Improvements"},
	"docs":     {4, "Documentation"},
	"test":     {5, "Testing"},
	"refactor": {6, "Refactoring"},
	"style":    {7, "Code Style"},
	"chore":    {8, "Chores"},
	"ci":       {9, "Continuous Integration"},
	"build":    {10, "Build System"},
}

// sectionFor returns the render section for a change type.
func sectionFor(changeType string) section {
	if s, ok := changeTypes[changeType]; ok {
		return s
	}
	return section{99, titleize(changeType)}
}

// titleize uppercases the first letter of each space-separated word.
func titleize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
