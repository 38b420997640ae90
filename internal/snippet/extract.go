package snippet

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Extractor resolves snippet paths against candidate roots and renders
// fenced markdown blocks with source links.
type Extractor struct {
	// Roots are base directories tried in order when resolving a path.
	// Typically the repo root followed by the docs directory.
	Roots []string
	// LinkBase is the URL prefix for "view full file" links.
	LinkBase string
	// DefaultLines bounds a tagged snippet when neither the tag declaration
	// nor the caller specifies a count.
	DefaultLines int
}

// NotFoundError reports a snippet path that resolved against no root.
type NotFoundError struct {
	Path  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("snippet: file not found: %s (tried: %s)", e.Path, strings.Join(e.Tried, ", "))
}

// TagNotFoundError reports a missing tag marker in a resolved file.
type TagNotFoundError struct {
	Tag  string
	Path string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("snippet: tag %q not found in %s", e.Tag, e.Path)
}

// TagOptions overrides tag extraction behavior. Zero values mean "infer".
type TagOptions struct {
	// Lang overrides the language inferred from the file extension.
	Lang string
	// Count overrides the number of lines to include.
	Count int
}

// FileOptions selects a line range. Zero values mean whole file.
type FileOptions struct {
	// Start is the 1-indexed first line to include.
	Start int
	// End is the 1-indexed last line to include (inclusive).
	End int
	// Lang overrides the language inferred from the file extension.
	Lang string
}

// Tag extracts the lines following a tag marker in the file at path.
// Markers have the form "# tag::NAME[N]" or "// tag::NAME[N]"; the optional
// [N] declares how many following lines belong to the snippet.
// Precedence for the line count: explicit option > tag declaration > default.
func (x *Extractor) Tag(path, tag string, opts TagOptions) (string, error) {
	full, err := x.resolve(path)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("snippet: reading %s: %w", path, err)
	}

	marker := regexp.MustCompile(`(?:#|//)?\s*tag::` + regexp.QuoteMeta(tag) + `(?:\[(\d+)\])?[^\n]*\n`)
	loc := marker.FindSubmatchIndex(content)
	if loc == nil {
		return "", &TagNotFoundError{Tag: tag, Path: path}
	}

	// Non-positive counts fall through to the tag declaration, then the default.
	count := 0
	if opts.Count > 0 {
		count = opts.Count
	}
	if count == 0 && loc[2] >= 0 {
		declared, _ := strconv.Atoi(string(content[loc[2]:loc[3]]))
		count = declared
	}
	if count <= 0 {
		count = x.defaultLines()
	}

	lines := strings.Split(string(content[loc[1]:]), "\n")
	if len(lines) > count {
		lines = lines[:count]
	}

	lang := opts.Lang
	if lang == "" {
		lang = InferLanguage(path)
	}

	return x.render(lang, strings.Join(lines, "\n"), path, ""), nil
}

// File returns the whole file or a 1-indexed inclusive line range.
func (x *Extractor) File(path string, opts FileOptions) (string, error) {
	full, err := x.resolve(path)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return "", fmt.Errorf("snippet: reading %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	total := len(lines)

	rangeSuffix := ""
	if opts.Start > 0 || opts.End > 0 {
		// Clamp the start into the file, then the end into [start, total],
		// so a degenerate range yields an empty snippet rather than a panic.
		startIdx := 0
		if opts.Start > 0 {
			startIdx = opts.Start - 1
		}
		if startIdx > total {
			startIdx = total
		}
		endIdx := total
		if opts.End > 0 && opts.End < total {
			endIdx = opts.End
		}
		if endIdx < startIdx {
			endIdx = startIdx
		}
		lines = lines[startIdx:endIdx]

		start := opts.Start
		if start == 0 {
			start = 1
		}
		end := opts.End
		if end == 0 {
			end = total
		}
		rangeSuffix = fmt.Sprintf(" (lines %d-%d)", start, end)
	}

	lang := opts.Lang
	if lang == "" {
		lang = InferLanguage(path)
	}

	body := strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
	return x.render(lang, body, path, rangeSuffix), nil
}

// GitHub embeds a file (optionally with a "#L10-L20" fragment) and appends an
// "Open in GitHub" link pointing at the given branch.
func (x *Extractor) GitHub(file, branch string) (string, error) {
	path := file
	fragment := ""
	if before, after, found := strings.Cut(file, "#"); found {
		path = before
		fragment = after
	}

	embedded, err := x.File(path, FileOptions{})
	if err != nil {
		return "", err
	}

	url := x.LinkBase + "/" + path
	if branch != "" {
		url = replaceBranch(x.LinkBase, branch) + "/" + path
	}
	if fragment != "" {
		url += "#" + fragment
	}

	return embedded + fmt.Sprintf("\n\n[Open in GitHub](%s)", url), nil
}

// camelBoundary splits CamelCase class names for URL slugs.
var camelBoundary = regexp.MustCompile(`([A-Z])`)

// KDoc returns a markdown link to the Dokka API docs for a fully qualified
// class name. Classes outside the documented modules render as plain code.
func KDoc(fqcn, display string) string {
	parts := strings.Split(fqcn, ".")
	className := parts[len(parts)-1]
	if display == "" {
		display = className
	}

	var module string
	switch {
	case strings.HasPrefix(fqcn, "viaduct.service"):
		module = "service"
	case strings.HasPrefix(fqcn, "viaduct.api"):
		module = "tenant-api"
	default:
		return "`" + display + "`"
	}

	pkg := strings.Join(parts[:len(parts)-1], ".")
	slug := strings.TrimPrefix(strings.ToLower(camelBoundary.ReplaceAllString(className, "-$1")), "-")

	return fmt.Sprintf("[`%s`](/apis/%s/%s/%s/)", display, module, pkg, slug)
}

// resolve locates path under the first candidate root that contains it.
func (x *Extractor) resolve(path string) (string, error) {
	tried := make([]string, 0, len(x.Roots))
	for _, root := range x.Roots {
		full := filepath.Join(root, path)
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			return full, nil
		}
		tried = append(tried, filepath.Join(root, path))
	}
	return "", &NotFoundError{Path: path, Tried: tried}
}

func (x *Extractor) defaultLines() int {
	if x.DefaultLines > 0 {
		return x.DefaultLines
	}
	return 10
}

// render produces the fenced block plus the source link line.
func (x *Extractor) render(lang, body, path, rangeSuffix string) string {
	return fmt.Sprintf("\n```%s\n%s\n```\n\n[View full file on GitHub](%s/%s)%s\n",
		lang, body, x.LinkBase, path, rangeSuffix)
}

// replaceBranch swaps the trailing path element of a tree link base for
// another branch (e.g. .../tree/master -> .../tree/release).
func replaceBranch(linkBase, branch string) string {
	idx := strings.LastIndex(linkBase, "/")
	if idx < 0 {
		return linkBase
	}
	return linkBase[:idx+1] + branch
}
