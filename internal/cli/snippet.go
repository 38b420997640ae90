package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viaduct-dev/releng/internal/config"
	"github.com/viaduct-dev/releng/internal/errors"
	"github.com/viaduct-dev/releng/internal/git"
	"github.com/viaduct-dev/releng/internal/snippet"
)

var (
	snippetLangFlag  string
	snippetCountFlag int
	snippetStartFlag int
	snippetEndFlag   int
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Extract code snippets for the docs build",
	Long: `Extract fenced code snippets from source files, either by comment tag
(# tag::NAME or // tag::NAME) or by line range. The docs build invokes these
same functions through the macro registry.`,
}

var snippetTagCmd = &cobra.Command{
	Use:   "tag <path> <tag>",
	Short: "Extract the lines following a tag marker",
	Long: `Extract a tagged region from a source file.

The marker "# tag::NAME[N]" (or "// tag::NAME[N]") starts the snippet; the
optional [N] declares how many following lines it spans.

Examples:
  releng snippet tag demoapps/starwars/config.kt CONFIG_EXAMPLE
  releng snippet tag schema.graphqls SCHEMA_TAG --lang graphql --count 5`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runSnippetTag,
}

var snippetFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Extract a whole file or line range",
	Long: `Extract a whole file, or an inclusive 1-indexed line range.

Examples:
  releng snippet file config/settings.yaml
  releng snippet file tenant/api/MyClass.kt --start 10 --end 20`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSnippetFile,
}

func init() {
	rootCmd.AddCommand(snippetCmd)
	snippetCmd.AddCommand(snippetTagCmd)
	snippetCmd.AddCommand(snippetFileCmd)

	snippetTagCmd.Flags().StringVar(&snippetLangFlag, "lang", "", "Syntax highlighting language (default: inferred from extension)")
	snippetTagCmd.Flags().IntVar(&snippetCountFlag, "count", 0, "Number of lines to include (default: tag declaration, then config)")

	snippetFileCmd.Flags().StringVar(&snippetLangFlag, "lang", "", "Syntax highlighting language (default: inferred from extension)")
	snippetFileCmd.Flags().IntVar(&snippetStartFlag, "start", 0, "First line to include (1-indexed)")
	snippetFileCmd.Flags().IntVar(&snippetEndFlag, "end", 0, "Last line to include (inclusive)")
}

func runSnippetTag(cmd *cobra.Command, args []string) error {
	x, err := newExtractor(cmd)
	if err != nil {
		return err
	}

	out, err := x.Tag(args[0], args[1], snippet.TagOptions{Lang: snippetLangFlag, Count: snippetCountFlag})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func runSnippetFile(cmd *cobra.Command, args []string) error {
	x, err := newExtractor(cmd)
	if err != nil {
		return err
	}

	out, err := x.File(args[0], snippet.FileOptions{
		Start: snippetStartFlag,
		End:   snippetEndFlag,
		Lang:  snippetLangFlag,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// newExtractor resolves snippet lookup roots: the repository root first,
// then the docs directory. Outside a repository the working directory is
// the only root.
func newExtractor(cmd *cobra.Command) (*snippet.Extractor, error) {
	cfg, err := config.Load(projectConfigFlag(cmd))
	if err != nil {
		return nil, errors.NewConfigError(err.Error())
	}

	roots := []string{}
	if root, err := git.RepositoryRoot(""); err == nil {
		roots = append(roots, root, filepath.Join(root, cfg.DocsDir))
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		roots = append(roots, cwd)
	}

	return &snippet.Extractor{
		Roots:        roots,
		LinkBase:     cfg.LinkBase,
		DefaultLines: cfg.SnippetLines,
	}, nil
}
