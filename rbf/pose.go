// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"
	"strings"
)

// TrainingPose pairs a driver-space input with the output it must reproduce.
// Name is informational only.
type TrainingPose struct {
	Name   string
	Input  []float64
	Output []float64
}

// TrainingSet is an ordered pose list. Activation indices follow this order.
type TrainingSet []TrainingPose

// DimensionPolicy decides what happens when a vector's length differs from
// the solver's declared dimension.
type DimensionPolicy int

const (
	// PadTruncate zero-fills missing trailing components and drops extra ones.
	PadTruncate DimensionPolicy = iota
	// Strict rejects any length mismatch with ErrDimensionMismatch.
	Strict
)

// DefaultDimensionPolicy mirrors how rig hosts feed sparse attribute arrays.
const DefaultDimensionPolicy = PadTruncate

func (p DimensionPolicy) String() string {
	switch p {
	case PadTruncate:
		return "pad_truncate"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("DimensionPolicy(%d)", int(p))
	}
}

// ParseDimensionPolicy accepts "pad_truncate" (also "pad", "") or "strict".
func ParseDimensionPolicy(s string) (DimensionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pad", "pad_truncate", "padtruncate":
		return PadTruncate, nil
	case "strict":
		return Strict, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDimensionPolicy)
}

// Conform returns a fresh length-n copy of v according to policy.
func (p DimensionPolicy) Conform(v []float64, n int) ([]float64, error) {
	if p == Strict && len(v) != n {
		return nil, fmt.Errorf("got %d components, want %d: %w", len(v), n, ErrDimensionMismatch)
	}
	out := make([]float64, n)
	copy(out, v)

	return out, nil
}

// split conforms every pose to (inDim, outDim) and returns the input and
// output row sets in pose order.
func (s TrainingSet) split(inDim, outDim int, policy DimensionPolicy) (inputs, outputs [][]float64, err error) {
	inputs = make([][]float64, len(s))
	outputs = make([][]float64, len(s))
	for i, p := range s {
		if inputs[i], err = policy.Conform(p.Input, inDim); err != nil {
			return nil, nil, fmt.Errorf("pose %d input: %w", i, err)
		}
		if outputs[i], err = policy.Conform(p.Output, outDim); err != nil {
			return nil, nil, fmt.Errorf("pose %d output: %w", i, err)
		}
	}

	return inputs, outputs, nil
}
