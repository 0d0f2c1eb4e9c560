// SPDX-License-Identifier: MIT

// Package rbf implements radial basis function interpolation for pose-space
// deformation.
//
// A Solver is trained on a set of poses, each pairing an n-dimensional driver
// input with an m-dimensional output. Rebuild forms the N×N kernel matrix of
// the training inputs, inverts it and caches the weights W = K⁻¹·Y; Evaluate
// then maps any driver vector through the kernel activations and W, and can
// post-process the result with one of the Normalization policies.
//
// Interpolation is exact: evaluating a training input reproduces its output
// (up to the 1e-9 regularization on the kernel diagonal).
//
// Kernels:
//
//	Linear               max(0, 1 − d/r)
//	Gaussian             exp(−(d/r)²)
//	Cubic                (1 − d/r)³ for d < r, else 0
//	InverseMultiQuadric  1/√(1 + (d/r)²)
//	Quintic              (1 − d/r)⁵ for d < r, else 0
//
// The radius r is floored at RadiusFloor.
//
// Lifecycle: a Solver starts NotReady. A successful Rebuild makes it Ready; a
// failed Rebuild or Invalidate drops the cached weights and makes it NotReady
// again. Evaluate on a NotReady solver returns ErrNotReady.
package rbf
