package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/molang/cli/cmd"
	"github.com/ardnew/molang/lang"
	"github.com/ardnew/molang/log"
	"github.com/ardnew/molang/pkg"
)

// CLI is the top-level command-line interface for molang.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Env     []string           `help:"Load constants and variables from YAML file(s) or '-' for stdin" placeholder:"FILE"       short:"e"`
	Var     map[string]float64 `help:"Define a variable"                                               placeholder:"NAME=VALUE" short:"v"`
	Const   map[string]float64 `help:"Define a constant"                                               placeholder:"NAME=VALUE" short:"c"`
	NoCache bool               `help:"Disable the compiled expression cache"`
	Version kong.VersionFlag   `help:"Print version and exit"`

	Init cmd.Init `cmd:"" help:"Initialize configuration file"`
	Fmt  cmd.Fmt  `cmd:"" help:"Format expressions"`
	Repl cmd.Repl `cmd:"" help:"Start an interactive session"`

	Eval cmd.Eval `cmd:"" default:"withargs" help:"Evaluate expressions"`
}

// Run executes the molang CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	paths := cmd.Paths{
		Config: configPath(baseConfig + ".yaml"),
		Cache:  cachePath(),
	}

	vars := kong.Vars{"version": pkg.Name + " " + pkg.Version}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that errors reported during parsing are
	// already formatted as requested.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.BindSingletonProvider(func() (*lang.Builder, error) {
			return cli.builder(ctx)
		}),
		kong.Bind(paths),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(loadYAML(ctx), paths.Config),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}

// builder returns the environment every command evaluates against: the
// built-in constants and functions, then each --env file in order, then the
// --const and --var flags.
func (c *CLI) builder(ctx context.Context) (*lang.Builder, error) {
	b := lang.NewBuilder(
		lang.WithLogger(log.With(slog.String("component", "lang"))),
		lang.WithCache(!c.NoCache),
	)

	for _, path := range c.Env {
		if err := loadEnvFile(ctx, b, path); err != nil {
			return nil, cmd.ErrLoadEnv.With(slog.String("file", path)).Wrap(err)
		}
	}

	env := lang.Env{Constants: c.Const, Variables: c.Var}
	if err := env.Apply(ctx, b); err != nil {
		return nil, cmd.ErrLoadEnv.With(slog.String("source", "flags")).Wrap(err)
	}

	log.DebugContext(ctx, "environment ready",
		slog.Int("variable_count", len(b.Variables())),
		slog.Int("constant_count", len(b.Constants())),
		slog.Bool("cache", !c.NoCache),
	)

	return b, nil
}

// loadEnvFile loads one environment document into b. The path "-" reads
// stdin.
func loadEnvFile(ctx context.Context, b *lang.Builder, path string) error {
	if path == "-" {
		return lang.LoadEnv(ctx, b, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return lang.LoadEnv(ctx, b, f)
}
