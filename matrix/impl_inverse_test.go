// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Gauss–Jordan Inverse.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/posespace/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestInverse_Known2x2(t *testing.T) {
	m := FromRows(t, [][]float64{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse(m, matrix.WithRegularization(0))
	require.NoError(t, err)

	want := FromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}})
	RequireAllClose(t, inv, want, 1e-12)
}

// TestInverse_TimesInputIsIdentity checks inv(M)·M ≈ I for random
// well-conditioned matrices up to 20×20 under the default policy.
func TestInverse_TimesInputIsIdentity(t *testing.T) {
	for n := 1; n <= 20; n++ {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			m := RandWellConditioned(t, n, int64(100+n))
			inv, err := matrix.Inverse(m)
			require.NoError(t, err)

			prod, err := matrix.Mul(inv, m)
			require.NoError(t, err)
			RequireIdentity(t, prod, 1e-6)
		})
	}
}

func TestInverse_MatchesGonum(t *testing.T) {
	for _, n := range []int{2, 5, 12} {
		m := RandWellConditioned(t, n, int64(n))
		got, err := matrix.Inverse(m, matrix.WithRegularization(0))
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(mat.NewDense(n, n, m.Flat())))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), 1e-9)
			}
		}
	}
}

func TestInverse_InterfaceFallback(t *testing.T) {
	m := RandWellConditioned(t, 5, 3)
	fast, err := matrix.Inverse(m)
	require.NoError(t, err)
	slow, err := matrix.Inverse(hide{m})
	require.NoError(t, err)
	RequireAllClose(t, fast, slow, 0)
}

func TestInverse_DoesNotMutateInput(t *testing.T) {
	m := FromRows(t, [][]float64{{2, 1}, {1, 3}})
	before := m.ToRows()
	_, err := matrix.Inverse(m)
	require.NoError(t, err)
	require.Equal(t, before, m.ToRows())
}

func TestInverse_Singular(t *testing.T) {
	strict := matrix.WithRegularization(0)
	tests := []struct {
		name string
		rows [][]float64
		opts []matrix.Option
	}{
		{"all zero, no regularization", [][]float64{{0, 0}, {0, 0}}, []matrix.Option{strict}},
		{"identical rows, no regularization", [][]float64{{1, 2}, {1, 2}}, []matrix.Option{strict}},
		{"identical rows 3x3, no regularization", [][]float64{{0.1, 0.3, 0.7}, {0.2, 0.5, 0.1}, {0.1, 0.3, 0.7}}, []matrix.Option{strict}},
		// Regularization brings the pivot to exactly zero and no row below helps.
		{"exact zero pivot, no swap candidate", [][]float64{{-1e-9}}, nil},
		// Regularization leaves a non-zero pivot of ~5e-11, below the tolerance.
		{"tiny pivot rejected", [][]float64{{-9.5e-10}}, nil},
		// The swap succeeds but the swapped-in pivot is still too small.
		{"tiny pivot after swap", [][]float64{{-1e-9, 1}, {5e-11, 0}}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.Inverse(FromRows(t, tc.rows), tc.opts...)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

// TestInverse_ExactZeroPivotSwaps exercises the row-swap branch: the default
// regularization turns the (0,0) entry into an exact zero, forcing a swap.
func TestInverse_ExactZeroPivotSwaps(t *testing.T) {
	m := FromRows(t, [][]float64{{-1e-9, 1}, {1, 0}})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	// The inverse is of the regularized matrix [[0,1],[1,1e-9]].
	reg := FromRows(t, [][]float64{{0, 1}, {1, 1e-9}})
	prod, err := matrix.Mul(inv, reg)
	require.NoError(t, err)
	RequireIdentity(t, prod, 1e-12)
}

// TestInverse_DefaultRegularizationRescuesZero documents that the unconditional
// diagonal shift makes an all-zero matrix invertible as (1e-9·I)⁻¹.
func TestInverse_DefaultRegularizationRescuesZero(t *testing.T) {
	inv, err := matrix.Inverse(MustDense(t, 3, 3))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1e9, MustAt(t, inv, i, i), 1e-3)
	}
}

func TestInverse_PivotToleranceOption(t *testing.T) {
	m := FromRows(t, [][]float64{{-9.5e-10}})
	inv, err := matrix.Inverse(m, matrix.WithPivotTolerance(0))
	require.NoError(t, err)
	v := MustAt(t, inv, 0, 0)
	require.False(t, math.IsInf(v, 0))
	require.InEpsilon(t, 2e10, v, 1e-3)
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestInverse_Empty(t *testing.T) {
	inv, err := matrix.Inverse(FromRows(t, nil))
	require.NoError(t, err)
	require.Zero(t, inv.Rows())
}
