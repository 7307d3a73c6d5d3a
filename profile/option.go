//go:build pprof

package profile

import "github.com/pkg/profile"

// option appends a setting to the list handed to profile.Start.
type option func([]func(*profile.Profile)) []func(*profile.Profile)

func withMode(m string) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if fn, ok := modes[m]; ok {
			s = append(s, fn)
		}

		return s
	}
}

func withPath(p string) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if p != "" {
			s = append(s, profile.ProfilePath(p))
		}

		return s
	}
}

func withQuiet(v bool) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if v {
			s = append(s, profile.Quiet)
		}

		return s
	}
}
