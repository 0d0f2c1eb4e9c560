// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes a kernel's behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRegularization is added to every diagonal entry of the working
	// copy before Gauss–Jordan elimination starts.
	DefaultRegularization = 1e-9

	// DefaultPivotTolerance rejects pivots whose magnitude is below it, after
	// the exact-zero row-swap search has run.
	DefaultPivotTolerance = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation in Set and
	// in NewDenseFromRows.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRegularizationInvalid = "matrix: WithRegularization: eps must be finite, non-negative"
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved numeric policy. Fields are unexported; build it
// through NewMatrixOptions or pass Option values to the kernels directly.
type Options struct {
	regularization float64 // diagonal shift applied by Inverse
	pivotTol       float64 // minimum accepted |pivot| in Inverse
	validateNaNInf bool    // reject NaN/Inf on ingestion
}

// WithRegularization sets the diagonal shift Inverse adds before elimination.
// Zero disables the shift, which makes Inverse a plain pivoting Gauss–Jordan.
// Panics if eps is NaN, ±Inf or negative.
func WithRegularization(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicRegularizationInvalid)
	}

	return func(o *Options) { o.regularization = eps }
}

// WithPivotTolerance sets the magnitude below which a pivot is rejected as singular.
// Panics if tol is NaN, ±Inf or negative.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables rejection of NaN/Inf on ingestion.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables rejection of NaN/Inf on ingestion.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Regularization reports the resolved diagonal shift.
func (o Options) Regularization() float64 { return o.regularization }

// PivotTolerance reports the resolved pivot rejection threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidateNaNInf reports whether NaN/Inf ingestion is rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

func defaultOptions() Options {
	return Options{
		regularization: DefaultRegularization,
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options in order over defaults; later options win.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
