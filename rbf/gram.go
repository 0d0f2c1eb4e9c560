// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"

	"github.com/katalvlaran/posespace/matrix"
)

// RegularizationEpsilon is added to the unit self-kernel on the diagonal of
// the kernel matrix. matrix.Inverse adds its own shift on top of this.
const RegularizationEpsilon = 1e-9

// KernelMatrix builds the N×N kernel (Gram) matrix of the training inputs:
// M[i,j] = kernel(‖xᵢ − xⱼ‖) for i ≠ j and M[i,i] = 1 + RegularizationEpsilon.
//
// The diagonal is fixed rather than evaluated, which keeps it strong for every
// kernel. Only the upper triangle is evaluated; the lower one is mirrored.
// All inputs must share one length (ErrDimensionMismatch otherwise). An empty
// input set yields a 0×0 matrix.
//
// Complexity: Time O(N²·n), Space O(N²).
func KernelMatrix(inputs [][]float64, cfg KernelConfig) (*matrix.Dense, error) {
	n := len(inputs)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	var (
		i, j int
		d    float64
		err  error
	)
	for i = 0; i < n; i++ {
		rows[i][i] = 1 + RegularizationEpsilon
		for j = i + 1; j < n; j++ {
			if d, err = Distance(inputs[i], inputs[j]); err != nil {
				return nil, rbfErrorf(opKernelMatrix, fmt.Errorf("poses %d,%d: %w", i, j, err))
			}
			rows[i][j] = cfg.Eval(d)
			rows[j][i] = rows[i][j]
		}
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, rbfErrorf(opKernelMatrix, err)
	}

	return m, nil
}
