// Package cmd provides the eval, fmt, init, and repl subcommands of molang.
package cmd

// Paths holds the runtime directories and files resolved before parsing the
// command line. It is bound into every command's Run method.
type Paths struct {
	// Config is the path of the YAML configuration file written by init.
	Config string
	// Cache is the directory for transient files such as the REPL history.
	Cache string
}
