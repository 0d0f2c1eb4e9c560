// SPDX-License-Identifier: MIT

// Package config loads rig files: YAML documents describing an RBF pose
// interpolator (dimensions, kernel, radius, normalization, training poses and
// sample drivers).
//
//	input_dim: 1
//	output_dim: 2
//	kernel: gaussian      # name or index 0..4
//	radius: 1.0
//	normalize: none       # none | clamp_sum | minmax_sum | true | false
//	dimension_policy: pad_truncate
//	poses:
//	  - {name: rest, input: [0], output: [1, 0]}
//	  - {name: bent, input: [1], output: [0, 1]}
//	drivers:
//	  - {name: half, input: [0.5]}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/posespace/rbf"
	"gopkg.in/yaml.v3"
)

// DefaultRadius is used when a rig leaves radius unset.
const DefaultRadius = 1.0

// ErrInvalidRig wraps every validation failure of a rig document.
var ErrInvalidRig = errors.New("config: invalid rig")

// Pose is one training pose of a rig file.
type Pose struct {
	Name   string    `yaml:"name,omitempty"`
	Input  []float64 `yaml:"input"`
	Output []float64 `yaml:"output"`
}

// Driver is one named sample driver of a rig file.
type Driver struct {
	Name  string    `yaml:"name,omitempty"`
	Input []float64 `yaml:"input"`
}

// Rig is the decoded rig document. Call Validate (Load and Parse do) before
// using the accessor methods.
type Rig struct {
	InputDim        int      `yaml:"input_dim"`
	OutputDim       int      `yaml:"output_dim"`
	Kernel          string   `yaml:"kernel"`
	Radius          *float64 `yaml:"radius"`
	Normalize       string   `yaml:"normalize"`
	DimensionPolicy string   `yaml:"dimension_policy"`
	Poses           []Pose   `yaml:"poses"`
	Drivers         []Driver `yaml:"drivers"`

	kernel        rbf.KernelType
	normalization rbf.Normalization
	policy        rbf.DimensionPolicy
}

// Load reads and parses the rig file at path.
func Load(path string) (*Rig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	rig, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rig, nil
}

// Parse decodes a rig document and validates it. Unknown fields are rejected;
// an empty document is a rig with no poses.
func Parse(data []byte) (*Rig, error) {
	var rig Rig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rig); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := rig.Validate(); err != nil {
		return nil, err
	}

	return &rig, nil
}

// Validate resolves names and applies the host-side clamps:
//   - unset dimensions are inferred from the longest pose vector (at least 1),
//     explicit ones below 1 are raised to 1;
//   - an unset radius becomes DefaultRadius, any radius is floored at rbf.RadiusFloor;
//   - an empty kernel is Gaussian; unknown kernel, normalization or policy
//     names are errors.
func (r *Rig) Validate() error {
	var err error
	if r.Kernel == "" {
		r.kernel = rbf.DefaultKernelType
	} else if r.kernel, err = rbf.ParseKernelType(r.Kernel); err != nil {
		return fmt.Errorf("%w: kernel: %w", ErrInvalidRig, err)
	}
	if r.normalization, err = rbf.ParseNormalization(r.Normalize); err != nil {
		return fmt.Errorf("%w: normalize: %w", ErrInvalidRig, err)
	}
	if r.policy, err = rbf.ParseDimensionPolicy(r.DimensionPolicy); err != nil {
		return fmt.Errorf("%w: dimension_policy: %w", ErrInvalidRig, err)
	}

	if r.InputDim == 0 {
		for _, p := range r.Poses {
			r.InputDim = max(r.InputDim, len(p.Input))
		}
	}
	if r.OutputDim == 0 {
		for _, p := range r.Poses {
			r.OutputDim = max(r.OutputDim, len(p.Output))
		}
	}
	r.InputDim = max(r.InputDim, 1)
	r.OutputDim = max(r.OutputDim, 1)

	radius := DefaultRadius
	if r.Radius != nil {
		radius = *r.Radius
	}
	radius = rbf.ClampRadius(radius)
	r.Radius = &radius

	return nil
}

// KernelConfig returns the resolved kernel configuration.
func (r *Rig) KernelConfig() rbf.KernelConfig {
	radius := DefaultRadius
	if r.Radius != nil {
		radius = *r.Radius
	}

	return rbf.KernelConfig{Type: r.kernel, Radius: radius}
}

// Normalization returns the resolved normalization policy.
func (r *Rig) Normalization() rbf.Normalization { return r.normalization }

// Policy returns the resolved dimension policy.
func (r *Rig) Policy() rbf.DimensionPolicy { return r.policy }

// TrainingSet converts the rig poses into solver input, in file order.
func (r *Rig) TrainingSet() rbf.TrainingSet {
	set := make(rbf.TrainingSet, len(r.Poses))
	for i, p := range r.Poses {
		set[i] = rbf.TrainingPose{Name: p.Name, Input: p.Input, Output: p.Output}
	}

	return set
}

// NewSolver builds a solver sized for the rig; opts are appended after the
// rig's own dimension policy.
func (r *Rig) NewSolver(opts ...rbf.Option) (*rbf.Solver, error) {
	all := append([]rbf.Option{rbf.WithDimensionPolicy(r.policy)}, opts...)

	return rbf.NewSolver(r.InputDim, r.OutputDim, all...)
}
