package changelog

import (
	"fmt"
	"sort"
	"strings"
)

// Render produces the grouped markdown changelog for a version.
// Breaking changes lead in a dedicated section and are excluded from their
// type's normal section. Remaining entries group by type in fixed priority
// order; unrecognized types sort last under a titleized heading.
func Render(version string, entries []Entry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("# Version %s\n\nNo changes.\n", version)
	}

	var breaking, regular []Entry
	for _, e := range entries {
		if e.Breaking {
			breaking = append(breaking, e)
		} else {
			regular = append(regular, e)
		}
	}

	grouped := groupByType(regular)

	types := make([]string, 0, len(grouped))
	for t := range grouped {
		types = append(types, t)
	}
	sort.SliceStable(types, func(i, j int) bool {
		si, sj := sectionFor(types[i]), sectionFor(types[j])
		if si.Priority != sj.Priority {
			return si.Priority < sj.Priority
		}
		return types[i] < types[j]
	})

	parts := []string{fmt.Sprintf("# Version %s", version), ""}

	if len(breaking) > 0 {
		parts = append(parts, renderBreaking(breaking))
	}
	for _, t := range types {
		parts = append(parts, renderSection(t, grouped[t]))
	}

	return strings.Join(parts, "\n")
}

// groupByType buckets entries by change type; commits that did not parse as
// conventional commits land in the chore bucket. Ordering within a group
// follows commit order.
func groupByType(entries []Entry) map[string][]Entry {
	grouped := make(map[string][]Entry)
	for _, e := range entries {
		t := e.Type
		if t == "" {
			t = "chore"
		}
		grouped[t] = append(grouped[t], e)
	}
	return grouped
}

func renderSection(changeType string, entries []Entry) string {
	lines := []string{"## " + sectionFor(changeType).Title, ""}
	for _, e := range entries {
		lines = append(lines, "- "+e.FormattedLine())
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func renderBreaking(entries []Entry) string {
	lines := []string{"## Breaking Changes", ""}
	for _, e := range entries {
		desc := e.BreakingDescription
		if desc == "" {
			desc = e.Description
		}
		lines = append(lines, fmt.Sprintf("- %s by %s", desc, e.FormattedAuthors()))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
