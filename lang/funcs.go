package lang

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"
)

// Factory builds the node for a call of the function registered as name.
// It rejects argument lists it cannot accept.
type Factory func(args []Expr, name string) (Expr, error)

// Fixed returns a [Factory] for functions taking exactly arity arguments.
func Fixed(arity int, fn Func) Factory {
	return Range(arity, arity, fn)
}

// Range returns a [Factory] for functions taking between lo and hi arguments,
// inclusive.
func Range(lo, hi int, fn Func) Factory {
	return func(args []Expr, name string) (Expr, error) {
		if len(args) < lo || len(args) > hi {
			want := strconv.Itoa(lo)
			if hi != lo {
				want += ".." + strconv.Itoa(hi)
			}

			return nil, ErrArityMismatch.With(
				slog.String("function", name),
				slog.String("want", want),
				slog.Int("got", len(args)),
			)
		}

		return Function{Name: name, Args: args, Fn: fn}, nil
	}
}

func unary(fn func(float64) float64) Func {
	return func(args []float64) float64 { return fn(args[0]) }
}

func binary(fn func(float64, float64) float64) Func {
	return func(args []float64) float64 { return fn(args[0], args[1]) }
}

// builtins returns the default function table. The random function draws
// from rng.
func builtins(rng *rand.Rand) map[string]Factory {
	return map[string]Factory{
		// Rounding
		"floor": Fixed(1, unary(math.Floor)),
		"ceil":  Fixed(1, unary(math.Ceil)),
		"round": Fixed(1, unary(math.Round)),
		"trunc": Fixed(1, unary(math.Trunc)),

		// Selection and limits
		"clamp": Fixed(3, func(a []float64) float64 { return Clamp(a[0], a[1], a[2]) }),
		"min":   Fixed(2, binary(math.Min)),
		"max":   Fixed(2, binary(math.Max)),

		// Classical
		"abs":  Fixed(1, unary(math.Abs)),
		"sin":  Fixed(1, unary(math.Sin)),
		"cos":  Fixed(1, unary(math.Cos)),
		"exp":  Fixed(1, unary(math.Exp)),
		"ln":   Fixed(1, unary(math.Log)),
		"sqrt": Fixed(1, unary(math.Sqrt)),
		"mod":  Fixed(2, binary(math.Mod)),
		"pow":  Fixed(2, binary(math.Pow)),

		// Utility
		"lerp":       Fixed(3, func(a []float64) float64 { return Lerp(a[0], a[1], a[2]) }),
		"lerprotate": Fixed(3, func(a []float64) float64 { return LerpRotate(a[0], a[1], a[2]) }),
		"random":     Range(0, 2, random(rng)),
	}
}

// Clamp limits x to the interval [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpRotate interpolates between the angles a and b, in radians, along the
// shorter arc.
func LerpRotate(a, b, t float64) float64 {
	return a + WrapAngle(b-a)*t
}

// WrapAngle normalizes an angle in radians into (-π, π].
func WrapAngle(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)

	switch {
	case x > math.Pi:
		x -= 2 * math.Pi
	case x <= -math.Pi:
		x += 2 * math.Pi
	}

	return x
}

func random(rng *rand.Rand) Func {
	return func(args []float64) float64 {
		r := rng.Float64()

		switch len(args) {
		case 1:
			return r * args[0]
		case 2:
			return args[0] + r*(args[1]-args[0])
		default:
			return r
		}
	}
}
