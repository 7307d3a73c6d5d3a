package lang

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"floor(1.7)", 1},
		{"floor(-1.2)", -2},
		{"ceil(1.2)", 2},
		{"ceil(-1.7)", -1},
		{"round(2.5)", 3},
		{"round(-2.5)", -3},
		{"round(2.4)", 2},
		{"trunc(1.7)", 1},
		{"trunc(-1.7)", -1},
		{"clamp(15, 0, 10)", 10},
		{"clamp(-5, 0, 10)", 0},
		{"clamp(5, 0, 10)", 5},
		{"min(1, 2)", 1},
		{"max(1, 2)", 2},
		{"abs(-3)", 3},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"exp(0)", 1},
		{"ln(E)", 1},
		{"sqrt(16)", 4},
		{"mod(7, 3)", 1},
		{"mod(-7, 3)", -1},
		{"pow(2, 10)", 1024},
		{"lerp(0, 10, 0.5)", 5},
		{"lerp(10, 20, 0)", 10},
		{"lerp(10, 20, 1)", 20},
		{"lerprotate(0, 1, 0.5)", 0.5},
		{"lerprotate(0, PI * 1.5, 0.5)", -math.Pi / 4},
		{"lerprotate(PI * 1.5, 0, 0.5)", math.Pi * 1.75},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := NewBuilder().Parse(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, Eval(e), 1e-9)
		})
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{math.Pi / 2, math.Pi / 2},
		{1.5 * math.Pi, -math.Pi / 2},
		{-1.5 * math.Pi, math.Pi / 2},
		{4.5 * math.Pi, math.Pi / 2},
	}

	for _, tt := range tests {
		got := WrapAngle(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "WrapAngle(%v)", tt.in)
		assert.True(t, got > -math.Pi && got <= math.Pi, "WrapAngle(%v) = %v out of range", tt.in, got)
	}
}

func TestRandom(t *testing.T) {
	b := NewBuilder(WithRand(rand.New(rand.NewPCG(1, 2))))

	tests := []struct {
		input  string
		lo, hi float64
	}{
		{"random()", 0, 1},
		{"random(10)", 0, 10},
		{"random(5, 6)", 5, 6},
		{"random(-2, 2)", -2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := b.Parse(tt.input)
			require.NoError(t, err)

			seen := make(map[float64]bool)

			for range 100 {
				v := Eval(e)
				assert.GreaterOrEqual(t, v, tt.lo)
				assert.Less(t, v, tt.hi)

				seen[v] = true
			}

			assert.Greater(t, len(seen), 1, "random returned a single value")
		})
	}
}

func TestRandom_Seeded(t *testing.T) {
	draw := func() []float64 {
		b := NewBuilder(WithRand(rand.New(rand.NewPCG(7, 7))))
		e := b.MustParse("random(100)")

		out := make([]float64, 5)
		for i := range out {
			out[i] = Eval(e)
		}

		return out
	}

	assert.Equal(t, draw(), draw())
}

func TestRegisterFunction(t *testing.T) {
	b := NewBuilder()
	b.RegisterFunction("double", Fixed(1, func(a []float64) float64 { return a[0] * 2 }))
	b.RegisterFunction("sum", Range(1, 4, func(a []float64) float64 {
		s := 0.0
		for _, v := range a {
			s += v
		}

		return s
	}))
	b.RegisterFunction("answer", func(args []Expr, name string) (Expr, error) {
		return Constant{Value: 42}, nil
	})

	tests := []struct {
		input string
		want  float64
	}{
		{"double(4)", 8},
		{"-double(4)", -8},
		{"!double(0)", 1},
		{"sum(1)", 1},
		{"sum(1, 2, 3, 4)", 10},
		{"answer()", 42},
		{"double(sum(1, 2)) + answer(1, 2)", 48},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := b.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Eval(e))
		})
	}

	_, err := b.Parse("sum()")
	require.ErrorIs(t, err, ErrArityMismatch)

	assert.Contains(t, b.Functions(), "double")
}

func TestRegisterFunction_OverridesBuiltin(t *testing.T) {
	b := NewBuilder()
	b.RegisterFunction("abs", Fixed(1, func([]float64) float64 { return -1 }))

	e, err := b.Parse("abs(5)")
	require.NoError(t, err)
	assert.Equal(t, -1.0, Eval(e))

	c := b.Clone()
	e, err = c.Parse("abs(5)")
	require.NoError(t, err)
	assert.Equal(t, -1.0, Eval(e), "clone lost the override")
}
