// Package snippet extracts tagged code snippets and line ranges from source
// files for embedding in generated docs. All functions are pure: given a path
// and a tag or range, they return a fenced markdown block with a link to the
// source, or a descriptive error. There is no silent fallback.
package snippet

import (
	"path/filepath"
	"strings"
)

// langMap maps file extensions to syntax highlighting languages.
var langMap = map[string]string{
	".kt":         "kotlin",
	".kts":        "kotlin",
	".java":       "java",
	".graphqls":   "graphql",
	".graphql":    "graphql",
	".yaml":       "yaml",
	".yml":        "yaml",
	".json":       "json",
	".md":         "markdown",
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".xml":        "xml",
	".html":       "html",
	".css":        "css",
	".sh":         "bash",
	".bash":       "bash",
	".sql":        "sql",
	".proto":      "protobuf",
	".toml":       "toml",
	".properties": "properties",
	".gradle":     "groovy",
}

// InferLanguage returns the syntax highlighting language for a file path's
// extension, defaulting to "text".
func InferLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := langMap[ext]; ok {
		return lang
	}
	return "text"
}
