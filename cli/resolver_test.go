package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	val, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: name}})
	require.NoError(t, err)

	return val
}

func TestLoadYAML_FlatKeys(t *testing.T) {
	r, err := loadYAML(t.Context())(strings.NewReader(`
log-level: debug
log_format: json
log-pretty: true
no-cache: false
env: [a.yaml, b.yaml]
var:
  speed: 1.5
  g: 9
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", resolveFlag(t, r, "log-level"))
	assert.Equal(t, "json", resolveFlag(t, r, "log-format"))
	assert.Equal(t, "true", resolveFlag(t, r, "log-pretty"))
	assert.Equal(t, "false", resolveFlag(t, r, "no-cache"))
	assert.Equal(t, "a.yaml,b.yaml", resolveFlag(t, r, "env"))
	assert.Equal(t, "g=9;speed=1.5", resolveFlag(t, r, "var"))
	assert.Nil(t, resolveFlag(t, r, "const"))
}

func TestLoadYAML_NestedKeys(t *testing.T) {
	r, err := loadYAML(t.Context())(strings.NewReader(`
log:
  level: trace
  time-layout: Kitchen
`))
	require.NoError(t, err)

	assert.Equal(t, "trace", resolveFlag(t, r, "log-level"))
	assert.Equal(t, "Kitchen", resolveFlag(t, r, "log-time-layout"))
}

func TestLoadYAML_EmptyAndInvalid(t *testing.T) {
	for name, input := range map[string]string{
		"empty":   "",
		"invalid": "log-level: [unterminated",
	} {
		t.Run(name, func(t *testing.T) {
			r, err := loadYAML(t.Context())(strings.NewReader(input))
			require.NoError(t, err)
			assert.Nil(t, resolveFlag(t, r, "log-level"))
			assert.NoError(t, r.Validate(nil))
		})
	}
}

func TestFlagString(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{nil, "", false},
		{"x", "x", true},
		{true, "true", true},
		{0.25, "0.25", true},
		{uint64(3), "3", true},
		{int64(-3), "-3", true},
		{[]any{"a", 1.5, nil}, "a,1.5", true},
		{map[string]any{"b": 2.0, "a": "x"}, "a=x;b=2", true},
	}

	for _, tt := range tests {
		got, ok := flagString(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}
