package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/molang/lang"
	"github.com/ardnew/molang/log"
	"github.com/ardnew/molang/pkg"
)

// Eval evaluates expressions given as arguments or read line by line from
// files.
type Eval struct {
	Expr    []string `arg:"" help:"Expression(s) to evaluate"                                  name:"expr" optional:""`
	File    []string `       help:"Read one expression per line from file(s) or '-' for stdin"              placeholder:"FILE" short:"f"`
	Repeat  int      `       help:"Evaluate each expression N (at least 1) times and print the last result" default:"1"        short:"n"`
	DumpEnv bool     `       help:"Write the final variables and constants as YAML"           name:"dump-env"`
}

// Run executes the eval command.
//
// Expressions are compiled by one builder, so assignments in an earlier
// expression are visible to later ones. A failing expression is reported and
// skipped; the error returned at the end lists every failure.
func (e *Eval) Run(ctx context.Context, b *lang.Builder, out io.Writer) (err error) {
	if e.Repeat < 1 {
		return ErrEvaluate.With(slog.Int("repeat", e.Repeat)).Wrap(ErrInvalidRepeat)
	}

	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var failed pkg.Error

	err = inputs(ctx, e.Expr, e.File, func(in line) error {
		expr, err := b.ParseContext(ctx, in.text)
		if err != nil {
			err = lang.WrapError(err).With(
				slog.String("input", in.source),
				slog.Int("line", in.number),
			)
			log.WarnContext(ctx, "skip expression", slog.Any("error", err))

			failed = failed.Wrap(err)

			return nil
		}

		_, err = fmt.Fprintf(out, "%g\n", e.evaluate(expr))

		return err
	})
	if err != nil {
		return ErrEvaluate.Wrap(err)
	}

	if e.DumpEnv {
		if err := lang.DumpEnv(ctx, out, b); err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}
	}

	if len(failed) > 0 {
		return ErrEvaluate.
			With(slog.Int("failed", len(failed))).
			Wrap(failed.Err())
	}

	return nil
}

func (e *Eval) evaluate(expr lang.Expr) float64 {
	result := lang.Eval(expr)

	for range e.Repeat - 1 {
		result = lang.Eval(expr)
	}

	return result
}
