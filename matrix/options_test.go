// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/posespace/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultRegularization, o.Regularization())
	require.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptionsLastWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithRegularization(1e-6),
		matrix.WithRegularization(0),
		matrix.WithPivotTolerance(1e-3),
		matrix.WithNoValidateNaNInf(),
		nil,
	)
	require.Zero(t, o.Regularization())
	require.Equal(t, 1e-3, o.PivotTolerance())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithRegularization(-1) })
	require.Panics(t, func() { matrix.WithRegularization(math.NaN()) })
	require.Panics(t, func() { matrix.WithPivotTolerance(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithPivotTolerance(-1e-12) })
}
