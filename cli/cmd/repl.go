package cmd

import (
	"context"

	"github.com/ardnew/jalg/cli/cmd/repl"
	"github.com/ardnew/jalg/log"
)

// Repl starts an interactive session.
type Repl struct {
	Format string `default:"native" enum:"native,tree,json,yaml" help:"Initial output format."`
	SVG    bool   `default:"true"                                help:"Print a projection summary after each result." negatable:""`
	Lens   bool   `                                              help:"Draw round containers as a lens in projection summaries."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	var cacheDir string
	if ktx := kongContextFrom(ctx); ktx != nil {
		cacheDir = ktx.Model.Vars()[CacheIdentifier]
	}

	return repl.Run(ctx, cacheDir, log.Default(),
		repl.WithFormat(r.Format),
		repl.WithSVG(r.SVG),
		repl.WithLens(r.Lens),
	)
}
