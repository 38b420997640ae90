package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNoChanges(t *testing.T) {
	out := Render("1.2.3", nil)
	assert.Equal(t, "# Version 1.2.3\n\nNo changes.\n", out)
}

func TestRenderGroupsByTypePriority(t *testing.T) {
	entries := []Entry{
		{Type: "chore", Description: "bump deps", Authors: []string{"@jane"}},
		{Type: "fix", Description: "handle nil parent", Authors: []string{"@bob"}},
		{Type: "feat", Description: "add schema validation", Authors: []string{"@jane"}},
	}

	out := Render("2.0.0", entries)

	features := strings.Index(out, "## Features")
	fixes := strings.Index(out, "## Bug Fixes")
	chores := strings.Index(out, "## Chores")
	require.NotEqual(t, -1, features)
	require.NotEqual(t, -1, fixes)
	require.NotEqual(t, -1, chores)

	assert.Less(t, features, fixes)
	assert.Less(t, fixes, chores)

	assert.Contains(t, out, "- add schema validation by @jane")
	assert.Contains(t, out, "- handle nil parent by @bob")
	assert.Contains(t, out, "- bump deps by @jane")
}

func TestRenderBreakingChangesLead(t *testing.T) {
	entries := []Entry{
		{Type: "feat", Description: "add thing", Authors: []string{"@jane"}},
		{
			Type:                "fix",
			Description:         "tighten validation",
			Breaking:            true,
			BreakingDescription: "empty names are now rejected",
			Authors:             []string{"@bob"},
		},
	}

	out := Render("2.0.0", entries)

	breaking := strings.Index(out, "## Breaking Changes")
	features := strings.Index(out, "## Features")
	require.NotEqual(t, -1, breaking)
	require.NotEqual(t, -1, features)
	assert.Less(t, breaking, features)

	assert.Contains(t, out, "- empty names are now rejected by @bob")

	// A breaking entry never repeats in its type's regular section.
	assert.NotContains(t, out, "## Bug Fixes")
	assert.NotContains(t, out, "tighten validation")
}

func TestRenderBreakingFallsBackToDescription(t *testing.T) {
	entries := []Entry{
		{Type: "feat", Description: "remove legacy endpoint", Breaking: true, Authors: []string{"@jane"}},
	}

	out := Render("3.0.0", entries)
	assert.Contains(t, out, "- remove legacy endpoint by @jane")
}

func TestRenderUntypedEntriesLandInChores(t *testing.T) {
	entries := []Entry{
		{Description: "Merge pull request #42", Authors: []string{"@jane"}},
	}

	out := Render("1.0.0", entries)
	assert.Contains(t, out, "## Chores")
	assert.Contains(t, out, "- Merge pull request #42 by @jane")
}

func TestRenderUnknownTypeTitleizedLast(t *testing.T) {
	entries := []Entry{
		{Type: "wibble wobble", Description: "strange thing", Authors: []string{"@jane"}},
		{Type: "build", Description: "tune gradle caching", Authors: []string{"@bob"}},
	}

	out := Render("1.0.0", entries)

	build := strings.Index(out, "## Build System")
	unknown := strings.Index(out, "## Wibble Wobble")
	require.NotEqual(t, -1, build)
	require.NotEqual(t, -1, unknown)
	assert.Less(t, build, unknown)
}

func TestRenderAnonymousAuthors(t *testing.T) {
	entries := []Entry{
		{Type: "feat", Description: "add thing"},
	}

	out := Render("1.0.0", entries)
	assert.Contains(t, out, "- add thing by @anonymous")
}

func TestRenderHeader(t *testing.T) {
	out := Render("1.2.3", []Entry{{Type: "feat", Description: "x", Authors: []string{"@a"}}})
	assert.True(t, strings.HasPrefix(out, "# Version 1.2.3\n"))
}
