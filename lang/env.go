package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"
)

// Env is the document form of a builder environment:
//
//	constants:
//	  g: 9.81
//	variables:
//	  speed: 0
//	  temp.angle: 1.5
type Env struct {
	Constants map[string]float64 `yaml:"constants,omitempty"`
	Variables map[string]float64 `yaml:"variables,omitempty"`
}

// LoadEnv reads a YAML environment document from r and registers its
// constants, then its variables, with b. Existing variables are updated in
// place so that compiled trees observe the new values.
//
// An empty document is not an error.
func LoadEnv(ctx context.Context, b *Builder, r io.Reader) error {
	ra := readahead.NewReader(r)
	defer ra.Close()

	var env Env

	dec := yaml.NewDecoder(ra, yaml.DisallowUnknownField())

	err := dec.DecodeContext(ctx, &env)
	if err != nil && !errors.Is(err, io.EOF) {
		return ErrDecodeEnv.Wrap(err)
	}

	return env.Apply(ctx, b)
}

// Apply registers the constants of env, then its variables, with b.
// Existing variables keep their cells and take the new values.
func (env Env) Apply(ctx context.Context, b *Builder) error {
	constants := slices.Sorted(maps.Keys(env.Constants))
	variables := slices.Sorted(maps.Keys(env.Variables))

	// Validate every name before registering any.
	for _, name := range constants {
		if !isIdentifier(name) {
			return ErrDecodeEnv.With(slog.String("constant", name))
		}
	}

	for _, name := range variables {
		if !isIdentifier(name) {
			return ErrDecodeEnv.With(slog.String("variable", name))
		}
	}

	for _, name := range constants {
		b.RegisterConstant(name, env.Constants[name])
	}

	for _, name := range variables {
		b.Define(name, env.Variables[name])
	}

	b.logger.DebugContext(ctx, "load environment",
		slog.Int("constant_count", len(env.Constants)),
		slog.Int("variable_count", len(env.Variables)),
	)

	return nil
}

// DumpEnv writes the current variables and constants of b to w as a YAML
// environment document, with names in sorted order.
func DumpEnv(ctx context.Context, w io.Writer, b *Builder) error {
	doc := yaml.MapSlice{}

	if names := b.Constants(); len(names) > 0 {
		doc = append(doc, yaml.MapItem{
			Key:   "constants",
			Value: mapSlice(names, func(n string) float64 { return b.constants[n] }),
		})
	}

	if names := b.Variables(); len(names) > 0 {
		doc = append(doc, yaml.MapItem{
			Key:   "variables",
			Value: mapSlice(names, func(n string) float64 { return b.variables[n].Value }),
		})
	}

	data, err := yaml.MarshalContext(ctx, doc)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func mapSlice(names []string, value func(string) float64) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(names))
	for _, name := range names {
		ms = append(ms, yaml.MapItem{Key: name, Value: value(name)})
	}

	return ms
}
