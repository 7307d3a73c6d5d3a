// Package profile provides optional runtime profiling for molang.
//
// # Overview
//
// The package wraps [github.com/pkg/profile]. Profiling must be enabled at
// build time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Config.Start] returns a no-op and [Modes] is empty.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap memory profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace profiling
//
// # Usage
//
//	var c profile.Config = func() (string, string, bool) { return "", "", false }
//	c = profile.WithMode("cpu")(c)
//	c = profile.WithPath("/tmp/profiles")(c)
//	defer c.Start().Stop()
//
// Profiles are written to the configured directory, one file per mode
// (cpu.pprof, mem.pprof, ...). Analyze them with go tool pprof:
//
//	go tool pprof -http=: molang /tmp/profiles/cpu.pprof
//
// The CLI exposes the same settings as --pprof-mode and --pprof-dir, with
// the directory defaulting to $XDG_CACHE_HOME/molang/pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

// Enabled reports whether the binary was built with [Tag].
func Enabled() bool { return len(Modes()) > 0 }
