// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// normEps guards the near-zero divisors and sums in both normalizers.
const normEps = 1e-9

// Normalization selects the post-processing applied to a raw output vector.
type Normalization int

const (
	NormalizeNone Normalization = iota
	NormalizeClampSum
	NormalizeMinMaxSum
)

// DefaultNormalization is the policy a host applies when its
// "normalize outputs" switch is on.
const DefaultNormalization = NormalizeClampSum

func (n Normalization) String() string {
	switch n {
	case NormalizeNone:
		return "none"
	case NormalizeClampSum:
		return "clamp_sum"
	case NormalizeMinMaxSum:
		return "minmax_sum"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization accepts "none", "clamp_sum", "minmax_sum", and the
// boolean spellings "true"/"false" (true selects DefaultNormalization).
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "false", "off":
		return NormalizeNone, nil
	case "clamp_sum", "clampsum", "clamp":
		return NormalizeClampSum, nil
	case "minmax_sum", "minmaxsum", "minmax":
		return NormalizeMinMaxSum, nil
	case "true", "on":
		return DefaultNormalization, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownNormalization)
}

// Apply runs the selected normalizer on a copy of values.
// Unknown values behave as NormalizeNone.
func (n Normalization) Apply(values []float64) []float64 {
	switch n {
	case NormalizeClampSum:
		return ClampSumNormalize(values)
	case NormalizeMinMaxSum:
		return MinMaxSumNormalize(values)
	default:
		out := make([]float64, len(values))
		copy(out, values)

		return out
	}
}

// ClampSumNormalize projects values onto the probability simplex the simple
// way: clamp to >= 0 and divide by the sum. When the clamped sum is below
// 1e-9 every component becomes 1/len. An empty input is returned as is.
func ClampSumNormalize(values []float64) []float64 {
	if len(values) == 0 {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Max(0, v)
	}
	total := floats.Sum(out)
	if total < normEps {
		for i := range out {
			out[i] = 1 / float64(len(out))
		}

		return out
	}
	floats.Scale(1/total, out)

	return out
}

// MinMaxSumNormalize shifts values so the minimum lands on zero using
// v' = (v − min)/(1 − min), then scales down only if Σv' exceeds 1.
// The 1 − min divisor falls back to 1 when |1 − min| < 1e-9, and a final
// divisor below 1e-9 yields zeros. An empty input is returned as is.
//
// The 1 − min divisor is negative when min > 1, which flips the signs of the
// shifted components; callers wanting non-negative weights use ClampSum.
func MinMaxSumNormalize(values []float64) []float64 {
	if len(values) == 0 {
		return values
	}
	lo := floats.Min(values)
	span := 1 - lo
	if math.Abs(span) < normEps {
		span = 1
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - lo) / span
	}
	div := math.Max(1, floats.Sum(out))
	if div < normEps {
		return make([]float64, len(values))
	}
	floats.Scale(1/div, out)

	return out
}
