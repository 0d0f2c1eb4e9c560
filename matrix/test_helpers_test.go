// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/posespace/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// RandWellConditioned returns an n×n matrix with entries in [-1,1) and a
// diagonal shifted by n, which makes it strictly diagonally dominant.
func RandWellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			MustSet(t, m, i, j, v)
		}
	}

	return m
}

// RequireIdentity asserts m is I within tol per entry.
func RequireIdentity(t testing.TB, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, m.Rows(), m.Cols())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got := MustAt(t, m, i, j)
			require.LessOrEqualf(t, math.Abs(got-want), tol, "entry [%d,%d] = %g, want %g", i, j, got, want)
		}
	}
}

// RequireAllClose asserts a and b have equal shape and entries within tol.
func RequireAllClose(t testing.TB, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			require.InDeltaf(t, MustAt(t, a, i, j), MustAt(t, b, i, j), tol, "entry [%d,%d]", i, j)
		}
	}
}
