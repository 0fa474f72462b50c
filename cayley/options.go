// SPDX-License-Identifier: MIT
// Package cayley: Build options.

package cayley

import "runtime"

// Option tunes Build.
type Option func(*buildOptions)

type buildOptions struct {
	workers int
}

// WithWorkers bounds the number of rows computed at once.
// Values below 1 are ignored. Default: runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *buildOptions) {
		if n >= 1 {
			o.workers = n
		}
	}
}

func gatherOptions(opts []Option) buildOptions {
	o := buildOptions{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
