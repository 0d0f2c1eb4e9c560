// Package matrix offers the dense linear-algebra primitives behind the RBF solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf ingestion guard.
//   - Mul and VecMul (row vector × matrix) with *Dense fast paths.
//   - Inverse, a regularized Gauss–Jordan inversion with row-swap pivoting.
//   - Validators shared by all kernels (nil, square, shape, vector length,
//     symmetry).
//
// Everything here is dense and O(n³) at worst; it is sized for pose counts in
// the tens to low hundreds, not for large sparse systems.
//
// See the examples in this package for usage patterns.
package matrix
