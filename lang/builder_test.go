package lang

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/molang/log"
)

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder()

	assert.Equal(t, []string{"E", "PI"}, b.Constants())
	assert.Empty(t, b.Variables())

	pi, ok := b.Constant("PI")
	require.True(t, ok)
	assert.Equal(t, math.Pi, pi)

	assert.Contains(t, b.Functions(), "lerprotate")
	assert.Len(t, b.Functions(), 18)
	assert.IsIncreasing(t, b.Functions())
}

func TestBuilder_Define(t *testing.T) {
	b := NewBuilder()

	x := b.Define("x", 1)
	assert.Same(t, x, b.Define("x", 2), "Define must reuse the existing cell")
	assert.Equal(t, 2.0, x.Value)

	b.Define("a", 0)
	assert.Equal(t, []string{"a", "x"}, b.Variables())
}

func TestBuilder_RegisterVariableReplaces(t *testing.T) {
	b := NewBuilder()
	old := b.Define("x", 1)
	e := b.MustParse("x")

	fresh := NewVariable("x", 5)
	b.RegisterVariable(fresh)

	assert.Same(t, fresh, b.Variable("x"))
	assert.Equal(t, 1.0, Eval(e), "existing trees keep the old cell")
	assert.Equal(t, 5.0, Eval(b.MustParse("x")))

	old.Set(3)
	assert.Equal(t, 3.0, Eval(e))
}

func TestBuilder_Clone(t *testing.T) {
	b := NewBuilder()
	b.Define("x", 1)
	b.RegisterConstant("k", 10)
	b.RegisterFunction("twice", Fixed(1, func(a []float64) float64 { return 2 * a[0] }))

	c := b.Clone()

	require.NotSame(t, b.Variable("x"), c.Variable("x"))
	assert.Equal(t, 1.0, c.Variable("x").Value)

	e := c.MustParse("twice(x) + k")
	b.Define("x", 100)
	assert.Equal(t, 12.0, Eval(e), "clone must not share cells with the original")

	c.RegisterConstant("only", 1)
	_, ok := b.Constant("only")
	assert.False(t, ok)

	c.Define("y", 1)
	assert.Nil(t, b.Variable("y"))
}

func TestBuilder_CloneRandomIndependent(t *testing.T) {
	b := NewBuilder()
	c := b.Clone()

	e := c.MustParse("random()")
	v := Eval(e)

	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestBuilder_Logging(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
	)

	b := NewBuilder(WithLogger(logger))
	b.Define("x", 1)
	b.MustParse("x + 1")
	b.MustParse("x + 1")

	_, err := b.Parse("x +")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"register variable"`)
	assert.Contains(t, out, `"token_count":3`)
	assert.Contains(t, out, `"cache_hit":true`)
	assert.Contains(t, out, `"msg":"parse failed"`)
}

func TestBuilder_ZeroLoggerDiscards(t *testing.T) {
	var l log.Logger

	assert.NotPanics(t, func() {
		b := NewBuilder(WithLogger(l))
		b.Define("x", 1)
		b.MustParse("x")
	})
}

func TestVariablesOf(t *testing.T) {
	b := NewBuilder()
	x, y := b.Define("x", 0), b.Define("y", 0)

	got := Variables(b.MustParse("y * x + y - PI"))
	assert.Equal(t, []*Variable{y, x}, got)
}

func TestCount(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"1 + 2", 3},
		{"-(1)", 3},
		{"max(1, 2 * 3)", 5},
		{"t = 1; return t", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(b.MustParse(tt.input)))
		})
	}
}

func TestWalk_SkipsChildren(t *testing.T) {
	e := NewBuilder().MustParse("max(1, 2) + 3")

	visited := 0

	Walk(e, func(x Expr) bool {
		visited++

		_, isFunc := x.(Function)

		return !isFunc
	})

	assert.Equal(t, 3, visited)
}

func TestBuilder_Arity(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name   string
		lo, hi int
		ok     bool
	}{
		{"sqrt", 1, 1, true},
		{"clamp", 3, 3, true},
		{"random", 0, 2, true},
		{"hypot", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := b.Arity(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}
