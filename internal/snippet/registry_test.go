package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNames(t *testing.T) {
	x, _ := testExtractor(t)
	r := NewRegistry(x)

	assert.ElementsMatch(t, []string{"codetag", "codefile", "github", "kdoc"}, r.Names())
}

func TestRegistryUnknownMacro(t *testing.T) {
	x, _ := testExtractor(t)
	r := NewRegistry(x)

	_, err := r.Invoke("nosuch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown macro")
}

func TestCodetagMacro(t *testing.T) {
	x, _ := testExtractor(t)
	r := NewRegistry(x)

	out, err := r.Invoke("codetag", "src/Resolvers.kt", "resolver")
	require.NoError(t, err)
	assert.Contains(t, out, "fun resolve() {")

	t.Run("lang and count arguments", func(t *testing.T) {
		out, err := r.Invoke("codetag", "src/Resolvers.kt", "resolver", "java", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "```java")
		assert.NotContains(t, out, "return field")
	})

	t.Run("too few arguments", func(t *testing.T) {
		_, err := r.Invoke("codetag", "src/Resolvers.kt")
		assert.Error(t, err)
	})

	t.Run("non-integer count", func(t *testing.T) {
		_, err := r.Invoke("codetag", "src/Resolvers.kt", "resolver", "", "many")
		assert.Error(t, err)
	})
}

func TestCodefileMacro(t *testing.T) {
	x, _ := testExtractor(t)
	r := NewRegistry(x)

	out, err := r.Invoke("codefile", "src/Resolvers.kt", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "fun setup() {}")
	assert.Contains(t, out, "(lines 3-4)")

	t.Run("non-integer start", func(t *testing.T) {
		_, err := r.Invoke("codefile", "src/Resolvers.kt", "three")
		assert.Error(t, err)
	})
}

func TestGithubMacro(t *testing.T) {
	x, _ := testExtractor(t)
	r := NewRegistry(x)

	out, err := r.Invoke("github", "src/Resolvers.kt")
	require.NoError(t, err)
	assert.Contains(t, out, "[Open in GitHub]")
}

func TestKdocMacro(t *testing.T) {
	x, _ := testExtractor(t)
	r := NewRegistry(x)

	out, err := r.Invoke("kdoc", "viaduct.api.grts.NodeObject")
	require.NoError(t, err)
	assert.Equal(t, "[`NodeObject`](/apis/tenant-api/viaduct.api.grts/node-object/)", out)
}
