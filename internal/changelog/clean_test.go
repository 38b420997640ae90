package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldInclude(t *testing.T) {
	tests := map[string]struct {
		subject string
		want    bool
	}{
		"normal commit":           {"feat: add thing", true},
		"ignore lowercase":        {"ignore: bump deps", false},
		"ignore uppercase":        {"IGNORE: bump deps", false},
		"ignore mixed case":       {"Ignore: bump deps", false},
		"ignore not at start":     {"feat: ignore: nested", true},
		"ignore without colon":    {"ignored the tests", true},
		"empty subject":           {"", true},
		"ignore with no trailing": {"ignore:", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldInclude(tt.subject))
		})
	}
}

func TestCleanMessage(t *testing.T) {
	tests := map[string]struct {
		message string
		want    string
	}{
		"strips change id": {
			"fix: handle nil Github-Change-Id: abc123",
			"fix: handle nil",
		},
		"strips origin rev id": {
			"fix: handle nil GitOrigin-RevId: deadbeef42",
			"fix: handle nil",
		},
		"case insensitive": {
			"fix: handle nil github-change-id: abc123",
			"fix: handle nil",
		},
		"preserves closes reference": {
			"fix: handle nil Closes #42",
			"fix: handle nil Closes #42",
		},
		"preserves fixes reference": {
			"fix: handle nil\n\nFixes #7 GitOrigin-RevId: deadbeef",
			"fix: handle nil\n\nFixes #7",
		},
		"no metadata untouched": {
			"feat: add thing",
			"feat: add thing",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMessage(tt.message))
		})
	}
}

func TestReplaceSourceMarker(t *testing.T) {
	tests := map[string]struct {
		message string
		want    string
	}{
		"replaces marker":    {"fix: port change (AIRBNB)", "fix: port change (abc1234)"},
		"case insensitive":   {"fix: port change (airbnb)", "fix: port change (abc1234)"},
		"multiple markers":   {"(AIRBNB) and (AIRBNB)", "(abc1234) and (abc1234)"},
		"no marker":          {"fix: port change", "fix: port change"},
		"marker mid-subject": {"fix: (AIRBNB) port change", "fix: (abc1234) port change"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceSourceMarker(tt.message, "(AIRBNB)", "abc1234"))
		})
	}
}

func TestReplaceSourceMarkerEmptyMarker(t *testing.T) {
	assert.Equal(t, "unchanged", ReplaceSourceMarker("unchanged", "", "abc1234"))
}
