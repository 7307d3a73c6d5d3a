package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/molang/cli/cmd/repl"
	"github.com/ardnew/molang/lang"
	"github.com/ardnew/molang/log"
)

// Repl starts an interactive session over the configured environment.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context, b *lang.Builder, paths Paths) error {
	return repl.Run(ctx, b, paths.Cache, log.With(slog.String("component", "repl")))
}
