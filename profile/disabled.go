//go:build !pprof

package profile

// Modes returns no modes: the binary was built without the pprof tag.
func Modes() []string { return nil }

func start(string, string, bool) interface{ Stop() } { return ignore{} }
