// SPDX-License-Identifier: MIT
// Package rbf_test covers kernel evaluation, parsing and distance.
package rbf_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/posespace/rbf"
	"github.com/stretchr/testify/require"
)

func TestKernel_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		k    rbf.KernelType
		d, r float64
		want float64
	}{
		{"linear half", rbf.Linear, 0.5, 1, 0.5},
		{"linear beyond", rbf.Linear, 2, 1, 0},
		{"gaussian one", rbf.Gaussian, 1, 1, math.Exp(-1)},
		{"gaussian scaled", rbf.Gaussian, 1, 2, math.Exp(-0.25)},
		{"cubic half", rbf.Cubic, 0.5, 1, 0.125},
		{"cubic edge", rbf.Cubic, 1, 1, 0},
		{"cubic beyond", rbf.Cubic, 3, 1, 0},
		{"imq one", rbf.InverseMultiQuadric, 1, 1, 1 / math.Sqrt2},
		{"imq far", rbf.InverseMultiQuadric, 3, 1, 1 / math.Sqrt(10)},
		{"quintic half", rbf.Quintic, 0.5, 1, 1.0 / 32},
		{"quintic beyond", rbf.Quintic, 1.5, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, rbf.Kernel(tc.d, tc.r, tc.k), 1e-15)
		})
	}
}

func TestKernel_UnitAtZero(t *testing.T) {
	for _, k := range rbf.KernelTypes() {
		require.Equalf(t, 1.0, rbf.Kernel(0, 1, k), "kernel %s", k)
	}
}

func TestKernel_RadiusFloor(t *testing.T) {
	for _, k := range rbf.KernelTypes() {
		floor := rbf.Kernel(3e-6, rbf.RadiusFloor, k)
		require.Equalf(t, floor, rbf.Kernel(3e-6, 0, k), "kernel %s radius 0", k)
		require.Equalf(t, floor, rbf.Kernel(3e-6, -4, k), "kernel %s negative radius", k)
		require.Equalf(t, floor, rbf.Kernel(3e-6, math.NaN(), k), "kernel %s NaN radius", k)
		require.False(t, math.IsNaN(floor))
	}
}

func TestKernel_UnknownIsGaussian(t *testing.T) {
	for _, d := range []float64{0, 0.3, 1, 2.5} {
		require.Equal(t, rbf.Kernel(d, 0.7, rbf.Gaussian), rbf.Kernel(d, 0.7, rbf.KernelType(42)))
		require.Equal(t, rbf.Kernel(d, 0.7, rbf.Gaussian), rbf.Kernel(d, 0.7, rbf.KernelType(-1)))
	}
}

func TestKernel_MonotoneNonIncreasing(t *testing.T) {
	for _, k := range rbf.KernelTypes() {
		prev := math.Inf(1)
		for d := 0.0; d <= 3; d += 0.05 {
			v := rbf.Kernel(d, 1, k)
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqualf(t, v, prev, "kernel %s at %g", k, d)
			prev = v
		}
	}
}

func TestClampRadius(t *testing.T) {
	require.Equal(t, rbf.RadiusFloor, rbf.ClampRadius(0))
	require.Equal(t, rbf.RadiusFloor, rbf.ClampRadius(-1))
	require.Equal(t, rbf.RadiusFloor, rbf.ClampRadius(math.NaN()))
	require.Equal(t, rbf.RadiusFloor, rbf.ClampRadius(1e-7))
	require.Equal(t, 2.5, rbf.ClampRadius(2.5))
}

func TestKernelType_StringAndParse(t *testing.T) {
	for _, k := range rbf.KernelTypes() {
		got, err := rbf.ParseKernelType(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	accepted := map[string]rbf.KernelType{
		"0":                       rbf.Linear,
		" 4 ":                     rbf.Quintic,
		"Gauss":                   rbf.Gaussian,
		"IMQ":                     rbf.InverseMultiQuadric,
		"inverse-multi-quadratic": rbf.InverseMultiQuadric,
		"Inverse MultiQuadric":    rbf.InverseMultiQuadric,
		"CUBIC":                   rbf.Cubic,
	}
	for in, want := range accepted {
		got, err := rbf.ParseKernelType(in)
		require.NoErrorf(t, err, "input %q", in)
		require.Equal(t, want, got)
	}

	for _, bad := range []string{"", "5", "-1", "thin_plate"} {
		_, err := rbf.ParseKernelType(bad)
		require.ErrorIsf(t, err, rbf.ErrUnknownKernel, "input %q", bad)
	}

	require.Equal(t, "KernelType(9)", rbf.KernelType(9).String())
	require.False(t, rbf.KernelType(9).Valid())
}

func TestKernelConfig_Eval(t *testing.T) {
	cfg := rbf.DefaultKernelConfig()
	require.Equal(t, rbf.Gaussian, cfg.Type)
	require.Equal(t, 1.0, cfg.Radius)
	require.Equal(t, math.Exp(-1), cfg.Eval(1))
}

func TestDistance(t *testing.T) {
	d, err := rbf.Distance([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	d, err = rbf.Distance(nil, []float64{})
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = rbf.Distance([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, rbf.ErrDimensionMismatch)
}
