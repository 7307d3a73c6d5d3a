package lang

import (
	"context"
	"log/slog"
	"maps"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/ardnew/molang/log"
)

// Builder compiles expressions against an environment of variables,
// constants, and functions.
//
// Name resolution prefers variables over constants. Function names form a
// separate namespace. A Builder is not safe for concurrent use; use
// [Builder.Clone] to give each goroutine its own environment.
//
// Example:
//
//	b := lang.NewBuilder()
//	x := b.Define("x", 2)
//	e, _ := b.Parse("x * PI")
//	lang.Eval(e) // 6.283185307179586
//	x.Set(3)
//	lang.Eval(e) // 9.42477796076938
type Builder struct {
	logger    log.Logger
	rand      *rand.Rand
	cache     *cache
	variables map[string]*Variable
	constants map[string]float64
	functions map[string]Factory
	custom    map[string]Factory
}

// Option configures a [Builder].
type Option func(*Builder)

// WithLogger sets the logger used for parse and registration events.
// The zero [log.Logger] discards all records.
func WithLogger(logger log.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithCache enables or disables memoization of compiled trees by source
// text. Caching is enabled by default.
func WithCache(enable bool) Option {
	return func(b *Builder) {
		if enable {
			b.cache = newCache()
		} else {
			b.cache = nil
		}
	}
}

// WithRand sets the source of the random function.
func WithRand(r *rand.Rand) Option {
	return func(b *Builder) {
		if r != nil {
			b.rand = r
		}
	}
}

// NewBuilder returns a [Builder] with the constants PI and E and the
// built-in functions registered.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		cache:     newCache(),
		variables: make(map[string]*Variable),
		constants: map[string]float64{
			"PI": math.Pi,
			"E":  math.E,
		},
		custom: make(map[string]Factory),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.rand == nil {
		b.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b.functions = builtins(b.rand)

	return b
}

// Parse compiles source into an expression tree.
func (b *Builder) Parse(source string) (Expr, error) {
	return b.ParseContext(log.DefaultContextProvider(), source)
}

// ParseContext compiles source into an expression tree, using ctx for
// logging.
func (b *Builder) ParseContext(ctx context.Context, source string) (Expr, error) {
	if b.cache != nil {
		if e, ok := b.cache.load(source); ok {
			b.logger.TraceContext(ctx, "parse",
				slog.String("source", source),
				slog.Bool("cache_hit", true),
			)

			return e, nil
		}
	}

	e, tokens, err := b.compile(source)
	if err != nil {
		err = WrapError(err).With(slog.String("source", source))

		b.logger.TraceContext(ctx, "parse failed",
			slog.String("source", source),
			slog.Any("error", err),
		)

		return nil, err
	}

	if b.cache != nil {
		b.cache.store(source, e)
	}

	b.logger.TraceContext(ctx, "parse",
		slog.String("source", source),
		slog.Int("token_count", tokens),
		slog.Int("node_count", Count(e)),
		slog.Bool("cache_hit", false),
	)

	return e, nil
}

// MustParse is like [Builder.Parse] but panics if source cannot be compiled.
func (b *Builder) MustParse(source string) Expr {
	e, err := b.Parse(source)
	if err != nil {
		panic(err)
	}

	return e
}

// RegisterVariable adds v to the environment, replacing any variable of the
// same name. Trees compiled afterwards refer to v itself.
func (b *Builder) RegisterVariable(v *Variable) {
	b.variables[v.Name] = v
	b.invalidate()

	b.logger.Debug("register variable",
		slog.String("name", v.Name),
		slog.Float64("value", v.Value),
	)
}

// Variable returns the registered variable with the given name, or nil.
func (b *Builder) Variable(name string) *Variable {
	return b.variables[name]
}

// Define sets the named variable to value, registering it first if needed,
// and returns its cell.
func (b *Builder) Define(name string, value float64) *Variable {
	if v, ok := b.variables[name]; ok {
		v.Value = value

		return v
	}

	v := NewVariable(name, value)
	b.RegisterVariable(v)

	return v
}

// RegisterConstant adds or replaces a named constant.
func (b *Builder) RegisterConstant(name string, value float64) {
	b.constants[name] = value
	b.invalidate()

	b.logger.Debug("register constant",
		slog.String("name", name),
		slog.Float64("value", value),
	)
}

// Constant returns the value of the named constant.
func (b *Builder) Constant(name string) (float64, bool) {
	c, ok := b.constants[name]

	return c, ok
}

// RegisterFunction adds or replaces the factory for a function name.
func (b *Builder) RegisterFunction(name string, factory Factory) {
	b.functions[name] = factory
	b.custom[name] = factory
	b.invalidate()

	b.logger.Debug("register function", slog.String("name", name))
}

// Variables returns the names of all registered variables in sorted order.
func (b *Builder) Variables() []string { return slices.Sorted(maps.Keys(b.variables)) }

// Constants returns the names of all registered constants in sorted order.
func (b *Builder) Constants() []string { return slices.Sorted(maps.Keys(b.constants)) }

// Functions returns the names of all registered functions in sorted order.
func (b *Builder) Functions() []string { return slices.Sorted(maps.Keys(b.functions)) }

// maxProbeArity bounds the argument counts tried by [Builder.Arity].
const maxProbeArity = 8

// Arity reports the smallest and largest argument counts accepted by the
// function registered as name, trying at most maxProbeArity arguments.
// Variadic factories report hi as maxProbeArity.
func (b *Builder) Arity(name string) (lo, hi int, ok bool) {
	factory, found := b.functions[name]
	if !found {
		return 0, 0, false
	}

	lo, hi = -1, -1

	args := make([]Expr, 0, maxProbeArity)
	for n := 0; n <= maxProbeArity; n++ {
		if _, err := factory(args, name); err == nil {
			if lo < 0 {
				lo = n
			}

			hi = n
		}

		args = append(args, Constant{})
	}

	return lo, hi, lo >= 0
}

// Clone returns an independent builder. Its variables are new cells holding
// the current values, and its random source is seeded from b's.
func (b *Builder) Clone() *Builder {
	rng := rand.New(rand.NewPCG(b.rand.Uint64(), b.rand.Uint64()))

	c := &Builder{
		logger:    b.logger,
		rand:      rng,
		variables: make(map[string]*Variable, len(b.variables)),
		constants: maps.Clone(b.constants),
		functions: builtins(rng),
		custom:    maps.Clone(b.custom),
	}

	if b.cache != nil {
		c.cache = newCache()
	}

	for name, v := range b.variables {
		c.variables[name] = NewVariable(name, v.Value)
	}

	maps.Copy(c.functions, c.custom)

	return c
}

// invalidate drops compiled trees whose name resolution may have changed.
func (b *Builder) invalidate() {
	if b.cache != nil {
		b.cache.clear()
	}
}
