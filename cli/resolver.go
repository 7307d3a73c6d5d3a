package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/molang/log"
)

// loadYAML returns a [kong.ConfigurationLoader] that reads YAML config files
// in the layout written by the init command.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML(ctx), "/path/to/config.yaml")
//
// Values are converted as follows:
//   - Top-level keys name flags, with hyphens or underscores
//     (e.g., "log-level" or "log_level")
//   - Nested mappings also name flags by joining keys with hyphens, so
//     "log: {level: debug}" sets --log-level
//   - Sequences become comma-separated lists
//   - Mappings become semicolon-separated key=value pairs, the form taken by
//     map flags such as --var and --const
//
// Example config file:
//
//	log-level: debug
//	log-format: json
//	var:
//	  speed: 1.5
//
// This configuration will be applied to Kong flags:
//
//	--log-level=debug
//	--log-format=json
//	--var=speed=1.5
//
// Command-line flags override config file values. A file that does not
// decode is logged and ignored.
func loadYAML(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		if err := yaml.NewDecoder(r).DecodeContext(ctx, &doc); err != nil && err != io.EOF {
			log.WarnContext(ctx, "ignore configuration file", slog.Any("error", err))

			return config{}, nil
		}

		return makeConfig(doc), nil
	}
}

// config implements [kong.Resolver] for decoded configuration files.
type config map[string]string

// makeConfig flattens doc into flag names and string values.
func makeConfig(doc map[string]any) config {
	c := config{}
	c.add("", doc)

	return c
}

func (c config) add(prefix string, doc map[string]any) {
	for key, val := range doc {
		name := key
		if prefix != "" {
			name = prefix + "-" + key
		}

		if sub, ok := val.(map[string]any); ok {
			c.add(name, sub)
		}

		if s, ok := flagString(val); ok {
			c[name] = s
		}
	}
}

// flagString renders a decoded YAML value in the form Kong parses from the
// command line.
func flagString(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false

	case string:
		return v, true

	case bool:
		return strconv.FormatBool(v), true

	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true

	case int, int64, uint64:
		return fmt.Sprint(v), true

	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := flagString(elem); ok {
				parts = append(parts, s)
			}
		}

		return strings.Join(parts, ","), true

	case map[string]any:
		parts := make([]string, 0, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			if s, ok := flagString(v[k]); ok {
				parts = append(parts, k+"="+s)
			}
		}

		return strings.Join(parts, ";"), true

	default:
		return fmt.Sprint(v), true
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	if value, ok := c[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found: let Kong use defaults.
	return nil, nil
}
