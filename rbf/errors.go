// SPDX-License-Identifier: MIT
// Package rbf: sentinel error set.
// Solver entry points wrap these with an operation tag via rbfErrorf;
// callers match with errors.Is.

package rbf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/posespace/matrix"
)

var (
	// ErrSingularMatrix is returned by Rebuild when the regularized kernel
	// matrix cannot be inverted. It is the matrix package's ErrSingular, so
	// errors.Is matches either name.
	ErrSingularMatrix = matrix.ErrSingular

	// ErrDimensionMismatch signals vectors whose length does not match the
	// configured dimension under the Strict policy, or a distance between
	// vectors of different lengths.
	ErrDimensionMismatch = errors.New("rbf: dimension mismatch")

	// ErrNotReady is returned by Evaluate and friends when no successful
	// Rebuild happened since construction, the last Invalidate, or the last
	// failed Rebuild.
	ErrNotReady = errors.New("rbf: solver not ready, rebuild required")

	// ErrInvalidDimensions indicates an input or output dimension below 1.
	ErrInvalidDimensions = errors.New("rbf: dimensions must be >= 1")

	// ErrUnknownKernel is returned when a kernel name or index cannot be parsed.
	ErrUnknownKernel = errors.New("rbf: unknown kernel type")

	// ErrUnknownNormalization is returned when a normalization name cannot be parsed.
	ErrUnknownNormalization = errors.New("rbf: unknown normalization")

	// ErrUnknownDimensionPolicy is returned when a dimension policy name cannot be parsed.
	ErrUnknownDimensionPolicy = errors.New("rbf: unknown dimension policy")
)

// Operation tags for uniform error wrapping.
const (
	opRebuild      = "Rebuild"
	opEvaluate     = "Evaluate"
	opActivations  = "Activations"
	opSolveWeights = "SolveWeights"
	opKernelMatrix = "KernelMatrix"
	opDistance     = "Distance"
)

// rbfErrorf wraps err with an operation tag, preserving it for errors.Is.
func rbfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
