package changelog

// Generator wires the pipeline stages together: collect, classify, render.
type Generator struct {
	Collector  Collector
	Classifier *Classifier
}

// NewGenerator builds a Generator for the given repository.
func NewGenerator(repoPath, marker string, bots []string) *Generator {
	return &Generator{
		Collector:  Collector{RepoPath: repoPath},
		Classifier: NewClassifier(marker, BotSet(bots)),
	}
}

// Generate produces the markdown changelog for commits in from..to.
func (g *Generator) Generate(from, to string) (string, error) {
	commits, err := g.Collector.CommitsBetween(from, to)
	if err != nil {
		return "", err
	}
	return g.Build(to, commits), nil
}

// Build classifies already-collected commits and renders the document.
// Split from Generate so the full pipeline is testable without git.
func (g *Generator) Build(version string, commits []Commit) string {
	var entries []Entry
	for _, c := range commits {
		if e := g.Classifier.Classify(c); e != nil {
			entries = append(entries, *e)
		}
	}
	return Render(version, entries)
}
