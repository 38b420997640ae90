package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit and returns its root and the
// commit SHA.
func initRepo(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()

	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# demo\n"), 0o644))
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	hash, err := worktree.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return root, hash.String()
}

func TestCurrentBranch(t *testing.T) {
	root, _ := initRepo(t)

	branch, err := CurrentBranch(root)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestRepositoryRoot(t *testing.T) {
	root, _ := initRepo(t)
	nested := filepath.Join(root, "demoapps", "starwars")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := RepositoryRoot(nested)
	require.NoError(t, err)

	// Temp dirs may resolve through symlinks on some platforms.
	wantResolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, wantResolved, gotResolved)
}

func TestIsRepository(t *testing.T) {
	root, _ := initRepo(t)

	assert.True(t, IsRepository(root))
	assert.False(t, IsRepository(t.TempDir()))
}

func TestResolveRef(t *testing.T) {
	root, sha := initRepo(t)

	got, err := ResolveRef(root, "HEAD")
	require.NoError(t, err)
	assert.Equal(t, sha, got)

	got, err = ResolveRef(root, "master")
	require.NoError(t, err)
	assert.Equal(t, sha, got)

	_, err = ResolveRef(root, "no-such-ref")
	assert.Error(t, err)
}

func TestDebugLogger(t *testing.T) {
	root, _ := initRepo(t)

	var lines []string
	SetDebugLogger(func(format string, args ...any) {
		lines = append(lines, format)
	})
	t.Cleanup(func() { SetDebugLogger(nil) })

	_, err := CurrentBranch(root)
	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}
