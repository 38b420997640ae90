package changelog

import (
	"regexp"
	"strings"
)

var (
	emailLocalPart    = regexp.MustCompile(`^([^@]+)@`)
	coAuthorLocalPart = regexp.MustCompile(`<([^@]+)@`)
)

// BotSet converts a bot name list into a lookup set.
func BotSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// HandleFromEmail derives an @handle from an email address local-part.
// Returns empty string for invalid addresses and bot accounts.
func HandleFromEmail(email string, bots map[string]struct{}) string {
	m := emailLocalPart.FindStringSubmatch(email)
	if m == nil {
		return ""
	}
	local := m[1]
	if _, isBot := bots[local]; isBot {
		return ""
	}
	return "@" + local
}

// HandleFromCoAuthor derives an @handle from a Co-authored-by trailer value
// of the form "Name <email@example.com>". Returns empty string for invalid
// lines and bot accounts.
func HandleFromCoAuthor(line string, bots map[string]struct{}) string {
	m := coAuthorLocalPart.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	local := m[1]
	if _, isBot := bots[local]; isBot {
		return ""
	}
	return "@" + local
}

// ExtractAuthors returns handles for the primary author followed by each
// co-author trailer, with bot and invalid entries dropped. Duplicates pass
// through as-is.
func ExtractAuthors(c Commit, bots map[string]struct{}) []string {
	var authors []string

	if primary := HandleFromEmail(c.AuthorEmail, bots); primary != "" {
		authors = append(authors, primary)
	}

	if c.CoAuthorsRaw != "" {
		for _, raw := range strings.Split(c.CoAuthorsRaw, "|") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			if handle := HandleFromCoAuthor(raw, bots); handle != "" {
				authors = append(authors, handle)
			}
		}
	}

	return authors
}
