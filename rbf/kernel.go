// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// RadiusFloor is the smallest radius any kernel evaluation will use.
const RadiusFloor = 1e-5

// KernelType selects the radial basis function. The numeric values are the
// enumeration a rig host stores (0..4).
type KernelType int

const (
	Linear KernelType = iota
	Gaussian
	Cubic
	InverseMultiQuadric
	Quintic
)

// DefaultKernelType is used when a host leaves the kernel unset.
const DefaultKernelType = Gaussian

var kernelNames = [...]string{
	Linear:              "linear",
	Gaussian:            "gaussian",
	Cubic:               "cubic",
	InverseMultiQuadric: "inverse_multiquadric",
	Quintic:             "quintic",
}

// kernelAliases maps normalized spellings (lowercase, no separators) to kernels.
var kernelAliases = map[string]KernelType{
	"linear":                Linear,
	"gaussian":              Gaussian,
	"gauss":                 Gaussian,
	"cubic":                 Cubic,
	"inversemultiquadric":   InverseMultiQuadric,
	"inversemultiquadratic": InverseMultiQuadric,
	"imq":                   InverseMultiQuadric,
	"quintic":               Quintic,
}

// KernelTypes lists every supported kernel in enumeration order.
func KernelTypes() []KernelType {
	return []KernelType{Linear, Gaussian, Cubic, InverseMultiQuadric, Quintic}
}

// Valid reports whether k is one of the five supported kernels.
func (k KernelType) Valid() bool {
	return k >= Linear && k <= Quintic
}

func (k KernelType) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KernelType(%d)", int(k))
	}

	return kernelNames[k]
}

// ParseKernelType accepts a kernel name (case, spaces, '-' and '_' ignored;
// "gauss" and "imq" are accepted) or its enumeration index "0".."4".
func ParseKernelType(s string) (KernelType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if idx, err := strconv.Atoi(key); err == nil {
		if k := KernelType(idx); k.Valid() {
			return k, nil
		}

		return 0, fmt.Errorf("%q: %w", s, ErrUnknownKernel)
	}
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if k, ok := kernelAliases[key]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKernel)
}

// ClampRadius applies the radius floor. NaN is treated as below the floor.
func ClampRadius(radius float64) float64 {
	if !(radius >= RadiusFloor) {
		return RadiusFloor
	}

	return radius
}

// Kernel evaluates the radial basis function of kind k at distance with the
// given radius. The radius is floored at RadiusFloor first. Unknown kinds
// evaluate as Gaussian.
func Kernel(distance, radius float64, k KernelType) float64 {
	x := distance / ClampRadius(radius)
	switch k {
	case Linear:
		return math.Max(0, 1-x)
	case Cubic:
		if x >= 1 {
			return 0
		}
		t := 1 - x

		return t * t * t
	case InverseMultiQuadric:
		return 1 / math.Sqrt(1+x*x)
	case Quintic:
		if x >= 1 {
			return 0
		}
		t := 1 - x

		return t * t * t * t * t
	default:
		return math.Exp(-x * x)
	}
}

// KernelConfig is the kernel choice and its support radius.
type KernelConfig struct {
	Type   KernelType
	Radius float64
}

// DefaultKernelConfig returns a Gaussian kernel with radius 1.
func DefaultKernelConfig() KernelConfig {
	return KernelConfig{Type: DefaultKernelType, Radius: 1.0}
}

// Eval evaluates the configured kernel at distance.
func (c KernelConfig) Eval(distance float64) float64 {
	return Kernel(distance, c.Radius, c.Type)
}

// Distance returns the Euclidean distance between a and b.
// Vectors of different lengths are a contract violation (ErrDimensionMismatch);
// no implicit truncation happens.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, rbfErrorf(opDistance, fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch))
	}
	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, 2), nil
}
