package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/molang/cli/cmd"
	"github.com/ardnew/molang/lang"
	"github.com/ardnew/molang/log"
)

// keepLogger restores the package logger after tests whose flags
// reconfigure it.
func keepLogger(t *testing.T) {
	t.Helper()

	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })
}

func parseCLI(t *testing.T, opts []kong.Option, args ...string) *CLI {
	t.Helper()
	keepLogger(t)

	var cli CLI

	parser, err := kong.New(&cli, append([]kong.Option{
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
		kong.Vars{"version": "test"}.CloneWith(cli.Log.vars()).CloneWith(cli.Pprof.vars()),
	}, opts...)...)
	require.NoError(t, err)

	_, err = parser.Parse(args)
	require.NoError(t, err)

	return &cli
}

func TestCLI_Defaults(t *testing.T) {
	cli := parseCLI(t, nil, "1 + 2")

	assert.Equal(t, []string{"1 + 2"}, cli.Eval.Expr)
	assert.Equal(t, logLevel(log.DefaultLevel.String()), cli.Log.Level)
	assert.Equal(t, logFormat(log.DefaultFormat.String()), cli.Log.Format)
	assert.False(t, cli.Log.Pretty)
}

func TestCLI_Builder_FlagsAndEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("constants:\n  g: 9.5\nvariables:\n  v: 1\n"), 0o600))

	cli := parseCLI(t, nil, "--env", path, "--var", "v=2", "--const", "k=3", "eval", "v")

	b, err := cli.builder(t.Context())
	require.NoError(t, err)

	// Flags are applied after env files.
	assert.Equal(t, 2.0, b.Variable("v").Value)

	g, ok := b.Constant("g")
	assert.True(t, ok)
	assert.Equal(t, 9.5, g)

	e, err := b.Parse("v * k + g")
	require.NoError(t, err)
	assert.Equal(t, 15.5, lang.Eval(e))
}

func TestCLI_Builder_MissingEnvFile(t *testing.T) {
	cli := parseCLI(t, nil, "--env", filepath.Join(t.TempDir(), "missing.yaml"), "1")

	_, err := cli.builder(t.Context())
	assert.ErrorIs(t, err, cmd.ErrLoadEnv)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCLI_ConfigurationResolver(t *testing.T) {
	r, err := loadYAML(t.Context())(strings.NewReader("log-level: debug\nvar:\n  g: 9.5\n  h: 1\n"))
	require.NoError(t, err)

	cli := parseCLI(t, []kong.Option{kong.Resolvers(r)}, "g")

	assert.Equal(t, logLevel("debug"), cli.Log.Level)
	assert.Equal(t, map[string]float64{"g": 9.5, "h": 1}, cli.Var)
}

func TestCLI_CommandLineOverridesConfiguration(t *testing.T) {
	r, err := loadYAML(t.Context())(strings.NewReader("log-level: debug\n"))
	require.NoError(t, err)

	cli := parseCLI(t, []kong.Option{kong.Resolvers(r)}, "--log-level", "error", "g")

	assert.Equal(t, logLevel("error"), cli.Log.Level)
}
