package changelog

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// logFormat delimits each field with explicit markers and terminates records
// with a NUL byte, so bodies containing newlines never break record splitting.
// Co-author trailers are joined with "|" by git's trailer interpreter.
const logFormat = "SHA_START%hSHA_END " +
	"MSG_START%sMSG_END " +
	"BODY_START%bBODY_END " +
	"AUTHOR_START%aeAUTHOR_END " +
	"COAUTHORS_START%(trailers:key=Co-authored-by,valueonly,separator=%x7C)COAUTHORS_END" +
	"%x00"

var (
	shaField       = regexp.MustCompile(`SHA_START(.+?)SHA_END`)
	subjectField   = regexp.MustCompile(`MSG_START(.+?)MSG_END`)
	bodyField      = regexp.MustCompile(`(?s)BODY_START(.+?)BODY_END`)
	authorField    = regexp.MustCompile(`AUTHOR_START(.+?)AUTHOR_END`)
	coAuthorsField = regexp.MustCompile(`COAUTHORS_START(.*)COAUTHORS_END`)
)

// Collector wraps the git log invocation that feeds the changelog pipeline.
type Collector struct {
	// RepoPath is the repository to read. Empty means the current directory.
	RepoPath string
}

// CommitsBetween returns all commits in from..to (from exclusive, to inclusive),
// newest first, parsed into Commit records.
func (c Collector) CommitsBetween(from, to string) ([]Commit, error) {
	rangeSpec := fmt.Sprintf("%s..%s", from, to)

	args := []string{}
	if c.RepoPath != "" {
		args = append(args, "-C", c.RepoPath)
	}
	args = append(args, "log", rangeSpec, "--format=format:"+logFormat)

	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("git log %s: %w", rangeSpec, err)
	}

	return ParseRecords(string(out)), nil
}

// ParseRecords splits marker-formatted git log output into Commit records.
// Records are separated by NUL bytes; blank records are skipped.
func ParseRecords(out string) []Commit {
	var commits []Commit
	for _, record := range strings.Split(out, "\x00") {
		if strings.TrimSpace(record) == "" {
			continue
		}
		commits = append(commits, parseRecord(record))
	}
	return commits
}

func parseRecord(record string) Commit {
	return Commit{
		SHA:          extractField(shaField, record),
		Subject:      extractField(subjectField, record),
		Body:         extractField(bodyField, record),
		AuthorEmail:  extractField(authorField, record),
		CoAuthorsRaw: extractField(coAuthorsField, record),
	}
}

func extractField(re *regexp.Regexp, record string) string {
	m := re.FindStringSubmatch(record)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
