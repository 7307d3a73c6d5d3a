// Package cli contains the command line interface for molang.
//
// # Usage
//
// Expressions given as arguments are evaluated by default:
//
//	molang 'math.sqrt(16) + 1'
//	molang --var speed=2 'speed * 3'
//	molang eval -f script.molang
//
// Commands:
//   - eval: evaluate expressions from arguments, files, or stdin
//   - fmt: print expressions in canonical form, or as a JSON or YAML tree
//   - repl: start an interactive session
//   - init: write the current flags to the configuration file
//
// # Environment
//
// Every command evaluates against one environment built from the built-in
// constants and functions, then each --env YAML file in order, then the
// --const and --var flags.
//
// # Configuration
//
// Flags may also be set in config.yaml (written by init) or config.json in
// the user configuration directory. Command-line flags override both.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o molang .
//
// With the tag, --pprof-mode selects a profile (cpu, heap, mutex, and so
// on) and --pprof-dir sets its output directory.
package cli
