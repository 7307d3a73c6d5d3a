package lang

import "testing"

var benchmarks = []struct {
	name  string
	input string
}{
	{"literal", "42"},
	{"arithmetic", "x * 2 + y / 3 - 1"},
	{"precedence", "1 + 2 * 3 ** 2 - 4 / 2 % 3"},
	{"ternary", "x > y ? max(x, y) : min(x, y)"},
	{"functions", "clamp(lerp(x, y, 0.5), 0, 10) + sqrt(abs(x - y))"},
	{"statements", "t = x * 2; t = t + y; return t / 2"},
}

func benchBuilder() *Builder {
	b := NewBuilder(WithCache(false))
	b.Define("x", 3)
	b.Define("y", 7)

	return b
}

func BenchmarkParse(b *testing.B) {
	for _, bb := range benchmarks {
		b.Run(bb.name, func(b *testing.B) {
			env := benchBuilder()

			b.ReportAllocs()

			for b.Loop() {
				if _, err := env.Parse(bb.input); err != nil {
					b.Fatalf("parse error: %v", err)
				}
			}
		})
	}
}

func BenchmarkParse_Cached(b *testing.B) {
	env := NewBuilder()
	env.Define("x", 3)
	env.Define("y", 7)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := env.Parse("clamp(lerp(x, y, 0.5), 0, 10) + sqrt(abs(x - y))"); err != nil {
			b.Fatalf("parse error: %v", err)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	for _, bb := range benchmarks {
		b.Run(bb.name, func(b *testing.B) {
			e := benchBuilder().MustParse(bb.input)

			b.ReportAllocs()

			for b.Loop() {
				Eval(e)
			}
		})
	}
}
