package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/molang/lang"
)

// Fmt parses expressions and prints their trees in the chosen format.
type Fmt struct {
	Expr   []string `arg:"" help:"Expression(s) to format"                                   name:"expr" optional:""`
	File   []string `       help:"Read one expression per line from file(s) or '-' for stdin"             placeholder:"FILE"          short:"f"`
	Format string   `       help:"Output format (${enum})"                                   default:"native" enum:"native,json,yaml" short:"o"`
	Indent int      `       help:"Indent width for formatted output"                         default:"2"                              short:"i"`
}

// Run executes the fmt command. It stops at the first expression that
// fails to parse.
func (f *Fmt) Run(ctx context.Context, b *lang.Builder, out io.Writer) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	write, failure := f.writer()

	return inputs(ctx, f.Expr, f.File, func(in line) error {
		expr, err := b.ParseContext(ctx, in.text)
		if err != nil {
			return ErrFormat.
				With(
					slog.String("input", in.source),
					slog.Int("line", in.number),
				).
				Wrap(err)
		}

		if err := write(ctx, out, expr, f.Indent); err != nil {
			return failure.With(slog.String("format", f.Format)).Wrap(err)
		}

		return nil
	})
}

// writer returns the formatter for f.Format and the error reported when it
// fails.
func (f *Fmt) writer() (
	func(context.Context, io.Writer, lang.Expr, int) error,
	*Error,
) {
	switch f.Format {
	case "json":
		return lang.FormatJSON, ErrJSONMarshal
	case "yaml":
		return lang.FormatYAML, ErrYAMLMarshal
	default:
		return lang.Format, ErrFormat
	}
}
