// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"

	"github.com/katalvlaran/posespace/matrix"
)

// SolveWeights computes the N×m weight matrix W = K⁻¹·Y, where K is the
// kernel matrix of inputs and Y stacks outputs row by row.
//
// inputs and outputs must have the same length N, and every output row the
// same length m. Inversion failures surface as ErrSingularMatrix. N == 0
// yields a 0×0 matrix. invOpts are forwarded to matrix.Inverse.
//
// Complexity: Time O(N³ + N²·(n+m)), Space O(N² + N·m).
func SolveWeights(inputs, outputs [][]float64, cfg KernelConfig, invOpts ...matrix.Option) (*matrix.Dense, error) {
	_, w, err := solve(inputs, outputs, cfg, invOpts...)
	if err != nil {
		return nil, rbfErrorf(opSolveWeights, err)
	}

	return w, nil
}

// solve is SolveWeights that also hands back the kernel matrix for diagnostics.
func solve(inputs, outputs [][]float64, cfg KernelConfig, invOpts ...matrix.Option) (gram, weights *matrix.Dense, err error) {
	if len(inputs) != len(outputs) {
		return nil, nil, fmt.Errorf("%d inputs vs %d outputs: %w", len(inputs), len(outputs), ErrDimensionMismatch)
	}
	for i := 1; i < len(outputs); i++ {
		if len(outputs[i]) != len(outputs[0]) {
			return nil, nil, fmt.Errorf("output %d has %d components, want %d: %w", i, len(outputs[i]), len(outputs[0]), ErrDimensionMismatch)
		}
	}

	if gram, err = KernelMatrix(inputs, cfg); err != nil {
		return nil, nil, err
	}
	if gram.Rows() == 0 {
		empty, _ := matrix.NewDenseFromRows(nil)

		return gram, empty, nil
	}

	inv, err := matrix.Inverse(gram, invOpts...)
	if err != nil {
		return gram, nil, err
	}
	y, err := matrix.NewDenseFromRows(outputs)
	if err != nil {
		return gram, nil, err
	}
	if weights, err = matrix.Mul(inv, y); err != nil {
		return gram, nil, err
	}

	return gram, weights, nil
}
