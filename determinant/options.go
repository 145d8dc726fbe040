// SPDX-License-Identifier: MIT

package determinant

import "github.com/katalvlaran/gemdet/gem"

// Option mutates internal options.
type Option func(*Options)

// Options selects the elimination path and carries its engine options.
type Options struct {
	single bool
	gem    []gem.Option
}

// WithSingleThread selects the single-threaded reference path. Thread and
// barrier options are then ignored.
func WithSingleThread() Option {
	return func(o *Options) { o.single = true }
}

// WithGem forwards engine options (threads, barrier, logger, tracer,
// recorder). Repeated calls accumulate.
func WithGem(opts ...gem.Option) Option {
	return func(o *Options) { o.gem = append(o.gem, opts...) }
}

func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}

	return o
}
