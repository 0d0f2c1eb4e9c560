// SPDX-License-Identifier: MIT

// Functional configuration for Solver.
// Every default lives in a Default* constant; there is no package-level
// mutable state, each Solver owns its resolved Options.

package rbf

import (
	"github.com/katalvlaran/posespace/matrix"
	"github.com/rs/zerolog"
)

const panicDimensionPolicyInvalid = "rbf: WithDimensionPolicy: unknown policy"

// Option mutates Solver options.
type Option func(*Options)

// Options is the resolved Solver configuration.
type Options struct {
	logger     zerolog.Logger
	policy     DimensionPolicy
	inverseOpt []matrix.Option
}

// WithLogger routes rebuild diagnostics to l. The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithDimensionPolicy selects how mismatched vector lengths are handled.
// Panics on a value outside PadTruncate/Strict.
func WithDimensionPolicy(p DimensionPolicy) Option {
	if p != PadTruncate && p != Strict {
		panic(panicDimensionPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithInverseOptions forwards numeric policy options to matrix.Inverse during Rebuild.
func WithInverseOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.inverseOpt = append(o.inverseOpt, opts...) }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		logger: zerolog.Nop(),
		policy: DefaultDimensionPolicy,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
