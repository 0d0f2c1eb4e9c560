// SPDX-License-Identifier: MIT

// Package posenode is the host side of the RBF solver: it owns the
// attributes a rig node exposes (dimensions, kernel, radius, normalize
// switch, sparse target poses, sparse driver), tracks whether they changed
// since the last rebuild, and turns a driver into a fixed-length output.
//
// Attribute arrays are sparse and indexed the way a scene graph stores
// multi-attributes: components at indices >= the declared dimension are
// ignored, missing components read as zero, and targets are solved in
// ascending index order.
package posenode

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/posespace/rbf"
	"github.com/rs/zerolog"
)

const (
	DefaultInputDim  = 3
	DefaultOutputDim = 3
	DefaultRadius    = 1.0
)

// ErrNegativeIndex is returned when a sparse attribute index is below zero.
var ErrNegativeIndex = errors.New("posenode: negative attribute index")

type target struct {
	in  map[int]float64
	out map[int]float64
}

// Option configures a Node.
type Option func(*Node)

// WithLogger routes node and solver logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Node) { n.log = l }
}

// Node is a pose-space interpolation node. All methods are safe for
// concurrent use; Output serializes rebuilds.
type Node struct {
	mu sync.Mutex

	inDim     int
	outDim    int
	kernel    rbf.KernelType
	radius    float64
	normalize bool
	targets   map[int]*target
	driver    map[int]float64

	dirty  bool
	solver *rbf.Solver
	log    zerolog.Logger
}

// New returns a dirty node with default attributes and no targets.
func New(opts ...Option) *Node {
	n := &Node{
		inDim:   DefaultInputDim,
		outDim:  DefaultOutputDim,
		kernel:  rbf.DefaultKernelType,
		radius:  DefaultRadius,
		targets: make(map[int]*target),
		driver:  make(map[int]float64),
		dirty:   true,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Dirty reports whether the next Output will rebuild.
func (n *Node) Dirty() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.dirty
}

// SetInputDimension sets the driver dimension, clamped to at least 1.
// It returns the stored value.
func (n *Node) SetInputDimension(d int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	d = max(d, 1)
	if d != n.inDim {
		n.inDim, n.dirty = d, true
	}

	return d
}

// SetOutputDimension sets the output dimension, clamped to at least 1.
// It returns the stored value.
func (n *Node) SetOutputDimension(d int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	d = max(d, 1)
	if d != n.outDim {
		n.outDim, n.dirty = d, true
	}

	return d
}

// SetKernel selects the kernel. Values outside the enumeration are rejected.
func (n *Node) SetKernel(k rbf.KernelType) error {
	if !k.Valid() {
		return fmt.Errorf("posenode: SetKernel(%d): %w", int(k), rbf.ErrUnknownKernel)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if k != n.kernel {
		n.kernel, n.dirty = k, true
	}

	return nil
}

// SetRadius sets the kernel radius, clamped to rbf.RadiusFloor.
// It returns the stored value.
func (n *Node) SetRadius(r float64) float64 {
	r = rbf.ClampRadius(r)
	n.mu.Lock()
	defer n.mu.Unlock()
	if r != n.radius {
		n.radius, n.dirty = r, true
	}

	return r
}

// SetNormalize toggles ClampSum normalization of the output.
func (n *Node) SetNormalize(on bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if on != n.normalize {
		n.normalize, n.dirty = on, true
	}
}

// SetTargetInput sets component index of target t's input.
func (n *Node) SetTargetInput(t, index int, v float64) error {
	return n.setTarget(t, index, v, func(tg *target) map[int]float64 { return tg.in })
}

// SetTargetOutput sets component index of target t's output.
func (n *Node) SetTargetOutput(t, index int, v float64) error {
	return n.setTarget(t, index, v, func(tg *target) map[int]float64 { return tg.out })
}

// SetTarget replaces target t with dense input and output vectors.
func (n *Node) SetTarget(t int, input, output []float64) error {
	if t < 0 {
		return fmt.Errorf("posenode: target %d: %w", t, ErrNegativeIndex)
	}
	tg := &target{in: make(map[int]float64, len(input)), out: make(map[int]float64, len(output))}
	for i, v := range input {
		tg.in[i] = v
	}
	for i, v := range output {
		tg.out[i] = v
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets[t] = tg
	n.dirty = true

	return nil
}

func (n *Node) setTarget(t, index int, v float64, pick func(*target) map[int]float64) error {
	if t < 0 || index < 0 {
		return fmt.Errorf("posenode: target %d component %d: %w", t, index, ErrNegativeIndex)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	tg, ok := n.targets[t]
	if !ok {
		tg = &target{in: make(map[int]float64), out: make(map[int]float64)}
		n.targets[t] = tg
	}
	pick(tg)[index] = v
	n.dirty = true

	return nil
}

// RemoveTarget deletes target t. Removing a missing target is a no-op.
func (n *Node) RemoveTarget(t int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.targets[t]; ok {
		delete(n.targets, t)
		n.dirty = true
	}
}

// TargetCount returns the number of targets.
func (n *Node) TargetCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.targets)
}

// SetDriver sets driver component index. Drivers do not dirty the node.
func (n *Node) SetDriver(index int, v float64) error {
	if index < 0 {
		return fmt.Errorf("posenode: driver component %d: %w", index, ErrNegativeIndex)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.driver[index] = v

	return nil
}

// SetDriverVector replaces the whole driver with v.
func (n *Node) SetDriverVector(v []float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	clear(n.driver)
	for i, x := range v {
		n.driver[i] = x
	}
}

// Output rebuilds if needed and returns exactly OutputDimension components.
//
// A failed rebuild is returned as an error and leaves the node dirty, so the
// next call retries. Without targets the output is all zeros.
func (n *Node) Output() ([]float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.dirty {
		if err := n.rebuildLocked(); err != nil {
			return nil, err
		}
	}

	out := make([]float64, n.outDim)
	if len(n.targets) == 0 {
		return out, nil
	}

	policy := rbf.NormalizeNone
	if n.normalize {
		policy = rbf.DefaultNormalization
	}
	vals, err := n.solver.Evaluate(dense(n.driver, n.inDim), policy)
	if err != nil {
		return nil, fmt.Errorf("posenode: evaluate: %w", err)
	}
	copy(out, vals)

	return out, nil
}

func (n *Node) rebuildLocked() error {
	solver, err := rbf.NewSolver(n.inDim, n.outDim, rbf.WithLogger(n.log))
	if err != nil {
		return fmt.Errorf("posenode: rebuild: %w", err)
	}

	set := make(rbf.TrainingSet, 0, len(n.targets))
	for _, idx := range slices.Sorted(maps.Keys(n.targets)) {
		tg := n.targets[idx]
		set = append(set, rbf.TrainingPose{
			Name:   fmt.Sprintf("target[%d]", idx),
			Input:  dense(tg.in, n.inDim),
			Output: dense(tg.out, n.outDim),
		})
	}

	if err = solver.Rebuild(set, rbf.KernelConfig{Type: n.kernel, Radius: n.radius}); err != nil {
		n.solver = nil
		n.log.Error().Err(err).Msg("RBF error: singular matrix or invalid targets")

		return fmt.Errorf("posenode: rebuild: %w", err)
	}
	n.solver = solver
	n.dirty = false

	return nil
}

// dense expands a sparse component map into a length-dim vector, dropping
// indices >= dim.
func dense(sparse map[int]float64, dim int) []float64 {
	v := make([]float64, dim)
	for i, x := range sparse {
		if i < dim {
			v[i] = x
		}
	}

	return v
}
