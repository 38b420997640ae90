package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferLanguage(t *testing.T) {
	tests := map[string]struct {
		path string
		want string
	}{
		"kotlin":            {"src/Main.kt", "kotlin"},
		"kotlin script":     {"build.gradle.kts", "kotlin"},
		"graphql schema":    {"schema.graphqls", "graphql"},
		"yaml":              {"config.yml", "yaml"},
		"gradle is groovy":  {"build.gradle", "groovy"},
		"properties":        {"gradle.properties", "properties"},
		"uppercase ext":     {"README.MD", "markdown"},
		"unknown extension": {"binary.dat", "text"},
		"no extension":      {"Makefile", "text"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, InferLanguage(tc.path))
		})
	}
}
