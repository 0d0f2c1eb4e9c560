// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, row-vector projection and transpose. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and an
//     interface fallback via At/Set with the same loop order.
//   - Zero-size operands are legal: an empty pose set flows through Mul and
//     VecMul without special cases at the call site.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// ZeroPivot is the exact-zero pivot that triggers the row-swap search in Inverse.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opVecMul    = "VecMul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// VecMul computes the row vector y = xᵀ · m, i.e. y[j] = Σ_k x[k]·m[k,j].
//
// Contract: m non-nil; len(x) == m.Rows(). The result has length m.Cols().
// Fast-path: *Dense walks rows of m once, accumulating into y.
// Complexity: Time O(r*c), Space O(c).
func VecMul(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var (
		k, j   int
		xv, mv float64
		err    error
	)
	if d, ok := m.(*Dense); ok {
		var base int
		for k = 0; k < rows; k++ {
			xv = x[k]
			if xv == 0 {
				continue
			}
			base = k * cols
			for j = 0; j < cols; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	for k = 0; k < rows; k++ {
		xv = x[k]
		if xv == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			if mv, err = m.At(k, j); err != nil {
				return nil, matrixErrorf(opVecMul, err)
			}
			y[j] += xv * mv
		}
	}

	return y, nil
}

// Transpose returns a new Dense equal to mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[i*cols+j]
		}
	}

	return res, nil
}
