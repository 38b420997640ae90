package publish

import (
	"context"
	"fmt"
	"io"

	"github.com/viaduct-dev/releng/internal/config"
	"github.com/viaduct-dev/releng/internal/output"
)

// Factory builds a Publisher for one target. Injected so the bulk driver is
// testable without touching git or the filesystem.
type Factory func(app, repo string) (*Publisher, error)

// All publishes every target in sequence and returns the apps that failed.
// One failing app does not stop the remaining ones; the aggregate result is
// reported at the end.
func All(ctx context.Context, targets []config.PublishTarget, newPublisher Factory, out io.Writer) []string {
	fmt.Fprintf(out, "\n=== PUBLISHING ALL DEMO APPS ===\n\n")

	var failed []string
	for _, t := range targets {
		fmt.Fprintf(out, ">>> Publishing %s demo app...\n", t.App)

		p, err := newPublisher(t.App, t.Repo)
		if err == nil {
			err = p.Publish(ctx)
		}

		if err != nil {
			output.PrintFailure(out, fmt.Sprintf("%s publish failed: %v", t.App, err))
			failed = append(failed, t.App)
		} else {
			output.PrintSuccess(out, fmt.Sprintf("%s published successfully", t.App))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "=== DEMO APP PUBLISH SUMMARY ===\n")
	if len(failed) == 0 {
		output.PrintSuccess(out, "All demo apps published successfully!")
	} else {
		output.PrintFailure(out, "The following demo apps failed to publish:")
		for _, app := range failed {
			fmt.Fprintf(out, "  - %s\n", app)
		}
	}

	return failed
}
