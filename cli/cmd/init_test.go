package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type initCLI struct {
	Level   string             `default:"warn"`
	Pretty  bool               `negatable:""`
	Env     []string           `placeholder:"FILE"`
	Var     map[string]float64 `placeholder:"NAME=VALUE"`
	Version kong.VersionFlag
	Init    Init `cmd:""`
}

func parseInit(t *testing.T, args ...string) (*initCLI, *kong.Context) {
	t.Helper()

	var cli initCLI

	parser, err := kong.New(&cli,
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }),
		kong.Vars{"version": "test"},
	)
	require.NoError(t, err)

	ktx, err := parser.Parse(args)
	require.NoError(t, err)

	return &cli, ktx
}

func TestInit_Run_WritesFlagValues(t *testing.T) {
	cli, ktx := parseInit(t, "--var", "x=1.5", "--pretty", "init")
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, cli.Init.Run(WithContext(t.Context(), ktx), Paths{Config: path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	got := string(data)
	for _, want := range []string{"level: warn", "pretty: true", "var:", "x: 1.5"} {
		assert.Contains(t, got, want)
	}

	for _, absent := range []string{"help", "version", "env"} {
		assert.NotContains(t, got, absent)
	}
}

func TestInit_Run_RefusesOverwrite(t *testing.T) {
	cli, ktx := parseInit(t, "init")
	ctx := WithContext(t.Context(), ktx)
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("existing: true\n"), 0o600))

	err := cli.Init.Run(ctx, Paths{Config: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteConfig)
	assert.ErrorIs(t, err, ErrFileExists)

	cli.Init.Force = true
	require.NoError(t, cli.Init.Run(ctx, Paths{Config: path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: warn")
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"string", "json", "json"},
		{"bool", false, false},
		{"int", 3, 3},
		{"empty slice", []string{}, nil},
		{"slice", []string{"a.yaml"}, []string{"a.yaml"}},
		{"empty map", map[string]float64{}, nil},
		{"other", struct{ N int }{2}, "{2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flagValue(tt.in))
		})
	}
}
