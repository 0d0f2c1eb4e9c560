// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Inverse computes A⁻¹ by Gauss–Jordan elimination on a regularized working copy.
// The input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); materialize a working copy W and an identity I.
//   - Stage 2: W[i,i] += regularization for every i (unconditionally, even if
//     the caller already regularized).
//   - Stage 3: For each pivot column i:
//   - if W[i,i] is exactly zero, scan rows below for the first non-zero W[j,i]
//     and swap rows i and j in both W and I; none found → ErrSingular;
//   - if |W[i,i]| < pivot tolerance → ErrSingular;
//   - divide row i of W and I by the pivot;
//   - eliminate column i from every other row of W and I.
//   - Stage 4: I now holds the inverse.
//
// Behavior highlights:
//   - Two distinct thresholds: an exact zero triggers the swap search, a tiny
//     non-zero pivot (after any swap) is rejected. A small but non-zero pivot
//     is NOT swapped away; the first non-zero row below wins, not the largest.
//   - With the default regularization an all-zero matrix becomes 1e-9·I and
//     inverts; pass WithRegularization(0) for strict singularity detection.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Determinism:
//   - Fixed column order, first-found swap row, fixed elimination order.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	w, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := w.r
	inv, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		i, j, k    int
		pivot      float64
		factor     float64
		swapped    bool
		rowI, rowJ int
	)
	for i = 0; i < n; i++ {
		w.data[i*n+i] += o.regularization
	}

	for i = 0; i < n; i++ {
		rowI = i * n
		if w.data[rowI+i] == ZeroPivot {
			swapped = false
			for j = i + 1; j < n; j++ {
				if w.data[j*n+i] != ZeroPivot {
					swapRows(w.data, n, i, j)
					swapRows(inv.data, n, i, j)
					swapped = true
					break
				}
			}
			if !swapped {
				return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: no non-zero pivot: %w", i, ErrSingular))
			}
		}

		pivot = w.data[rowI+i]
		if math.Abs(pivot) < o.pivotTol {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: |pivot| %g below %g: %w", i, pivot, o.pivotTol, ErrSingular))
		}

		for k = 0; k < n; k++ {
			w.data[rowI+k] /= pivot
			inv.data[rowI+k] /= pivot
		}

		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			rowJ = j * n
			factor = w.data[rowJ+i]
			if factor == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				w.data[rowJ+k] -= factor * w.data[rowI+k]
				inv.data[rowJ+k] -= factor * inv.data[rowI+k]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows a and b of an n-column row-major buffer in place.
func swapRows(data []float64, n, a, b int) {
	ra, rb := a*n, b*n
	for k := 0; k < n; k++ {
		data[ra+k], data[rb+k] = data[rb+k], data[ra+k]
	}
}
