package changelog

import (
	"regexp"
	"strings"

	cc "github.com/leodido/go-conventionalcommits"
	ccparser "github.com/leodido/go-conventionalcommits/parser"
)

// breakingFooter matches a BREAKING CHANGE / BREAKING-CHANGE footer line and
// captures its description. Detected independently of the grammar machine so
// footer-only breaking changes are never missed.
var breakingFooter = regexp.MustCompile(`(?im)^BREAKING[ -]CHANGE:\s*(.+)$`)

// Classifier turns raw commits into changelog entries using the
// conventional-commit grammar.
type Classifier struct {
	machine cc.Machine

	// Marker is the internal token replaced by the short commit hash.
	Marker string
	// Bots are email local-parts that never resolve to author handles.
	Bots map[string]struct{}
}

// NewClassifier builds a Classifier with best-effort conventional parsing:
// a malformed message falls back to an untyped entry instead of failing.
func NewClassifier(marker string, bots map[string]struct{}) *Classifier {
	return &Classifier{
		machine: ccparser.NewMachine(cc.WithTypes(cc.TypesConventional), cc.WithBestEffort()),
		Marker:  marker,
		Bots:    bots,
	}
}

// Classify parses one commit into a changelog entry.
// Returns nil when the commit is excluded (ignore: prefix).
func (c *Classifier) Classify(commit Commit) *Entry {
	if !ShouldInclude(commit.Subject) {
		return nil
	}

	subject := CleanMessage(commit.Subject)
	subject = ReplaceSourceMarker(subject, c.Marker, commit.SHA)
	body := CleanMessage(commit.Body)

	entry := Entry{
		SHA:         commit.SHA,
		Description: subject,
		Authors:     ExtractAuthors(commit, c.Bots),
		Bump:        BumpNone,
	}

	message := subject
	if body != "" {
		message += "\n\n" + body
	}

	conv := c.parseConventional(message)
	if conv == nil {
		// Not a conventional commit: keep the cleaned subject as-is.
		return &entry
	}

	entry.Type = conv.Type
	if conv.Scope != nil {
		entry.Scope = *conv.Scope
	}
	if conv.Description != "" {
		entry.Description = conv.Description
	}

	entry.Breaking = conv.Exclamation
	if m := breakingFooter.FindStringSubmatch(body); m != nil {
		entry.Breaking = true
		entry.BreakingDescription = strings.TrimSpace(m[1])
	}

	entry.Bump = bumpFor(entry.Type, entry.Breaking)
	return &entry
}

// parseConventional runs the grammar machine, returning nil when the message
// does not parse as a conventional commit. In best-effort mode the machine
// returns a usable partial result alongside the error when the subject parsed
// but a later part of the message tripped the grammar, so the error alone is
// not treated as a failure.
func (c *Classifier) parseConventional(message string) *cc.ConventionalCommit {
	res, _ := c.machine.Parse([]byte(message))
	if res == nil {
		return nil
	}
	conv, ok := res.(*cc.ConventionalCommit)
	if !ok || !conv.Ok() {
		return nil
	}
	return conv
}

// bumpFor maps a change type and breaking flag to a bump severity.
// Breaking changes are always major; feat is minor; fix and perf are patch.
func bumpFor(changeType string, breaking bool) Bump {
	if breaking {
		return BumpMajor
	}
	switch changeType {
	case "feat":
		return BumpMinor
	case "fix", "perf":
		return BumpPatch
	default:
		return BumpNone
	}
}
