// SPDX-License-Identifier: MIT

package rbf

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/posespace/matrix"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
)

// State is the solver's readiness.
type State int

const (
	NotReady State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}

	return "not ready"
}

// snapshot is the immutable result of one successful rebuild.
type snapshot struct {
	cfg     KernelConfig
	inputs  [][]float64   // N×n conformed training inputs
	weights *matrix.Dense // N×m solved weights
}

// Solver owns one RBF interpolant: it rebuilds from a training set and a
// kernel configuration, then evaluates driver vectors against the cached
// weights.
//
// The cached state is swapped as a whole under a RWMutex, so Evaluate sees
// either the previous complete rebuild or the new one. Evaluations may run
// concurrently with each other.
type Solver struct {
	inDim, outDim int
	opts          Options
	log           zerolog.Logger

	mu    sync.RWMutex
	state State
	snap  *snapshot
}

// NewSolver returns a NotReady solver for inDim-dimensional drivers and
// outDim-dimensional outputs. Both dimensions must be at least 1.
func NewSolver(inDim, outDim int, opts ...Option) (*Solver, error) {
	if inDim < 1 || outDim < 1 {
		return nil, fmt.Errorf("in=%d out=%d: %w", inDim, outDim, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Solver{
		inDim:  inDim,
		outDim: outDim,
		opts:   o,
		log:    o.logger.With().Str("component", "rbf").Logger(),
		state:  NotReady,
	}, nil
}

// InputDim returns the driver dimension n.
func (s *Solver) InputDim() int { return s.inDim }

// OutputDim returns the output dimension m.
func (s *Solver) OutputDim() int { return s.outDim }

// DimensionPolicy returns the policy applied to poses and drivers.
func (s *Solver) DimensionPolicy() DimensionPolicy { return s.opts.policy }

// State reports readiness.
func (s *Solver) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Ready is shorthand for State() == Ready.
func (s *Solver) Ready() bool { return s.State() == Ready }

// Invalidate drops the cached weights. Hosts call it when training data or
// kernel configuration changes and they are not rebuilding right away.
func (s *Solver) Invalidate() {
	s.mu.Lock()
	s.state, s.snap = NotReady, nil
	s.mu.Unlock()
}

// Rebuild conforms set to the solver dimensions, builds and inverts the
// kernel matrix and caches the solved weights.
//
// On any error (ErrDimensionMismatch under Strict, ErrSingularMatrix, NaN/Inf
// outputs) the solver is left NotReady and previous weights are discarded.
// An empty set succeeds and yields a Ready solver with no poses.
func (s *Solver) Rebuild(set TrainingSet, cfg KernelConfig) error {
	cfg.Radius = ClampRadius(cfg.Radius)

	inputs, outputs, err := set.split(s.inDim, s.outDim, s.opts.policy)
	if err != nil {
		return s.fail(err, len(set), cfg)
	}
	gram, weights, err := solve(inputs, outputs, cfg, s.opts.inverseOpt...)
	if err != nil {
		return s.fail(err, len(set), cfg)
	}

	if gram.Rows() > 0 {
		if ev := s.log.Debug(); ev.Enabled() {
			n := gram.Rows()
			ev.Int("poses", n).
				Float64("cond", mat.Cond(mat.NewDense(n, n, gram.Flat()), 2)).
				Msg("kernel matrix conditioning")
		}
	}

	s.mu.Lock()
	s.state = Ready
	s.snap = &snapshot{cfg: cfg, inputs: inputs, weights: weights}
	s.mu.Unlock()

	s.log.Info().
		Int("poses", len(set)).
		Stringer("kernel", cfg.Type).
		Float64("radius", cfg.Radius).
		Msg("rebuild ok")

	return nil
}

func (s *Solver) fail(err error, poses int, cfg KernelConfig) error {
	s.mu.Lock()
	s.state, s.snap = NotReady, nil
	s.mu.Unlock()

	s.log.Error().
		Err(err).
		Int("poses", poses).
		Stringer("kernel", cfg.Type).
		Float64("radius", cfg.Radius).
		Msg("rebuild failed")

	return rbfErrorf(opRebuild, err)
}

// Evaluate maps driver through the cached interpolant and applies policy.
// It returns ErrNotReady unless the last Rebuild succeeded and nothing
// invalidated it since. With no training poses the result is empty.
func (s *Solver) Evaluate(driver []float64, policy Normalization) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, err := s.activationsLocked(driver)
	if err != nil {
		return nil, rbfErrorf(opEvaluate, err)
	}
	if len(act) == 0 {
		return []float64{}, nil
	}
	raw, err := matrix.VecMul(act, s.snap.weights)
	if err != nil {
		return nil, rbfErrorf(opEvaluate, err)
	}

	return policy.Apply(raw), nil
}

// Activations returns the per-pose kernel activations of driver, in
// training-set order.
func (s *Solver) Activations(driver []float64) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, err := s.activationsLocked(driver)
	if err != nil {
		return nil, rbfErrorf(opActivations, err)
	}

	return act, nil
}

func (s *Solver) activationsLocked(driver []float64) ([]float64, error) {
	if s.state != Ready {
		return nil, ErrNotReady
	}
	x, err := s.opts.policy.Conform(driver, s.inDim)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	act := make([]float64, len(s.snap.inputs))
	var d float64
	for i, p := range s.snap.inputs {
		if d, err = Distance(x, p); err != nil {
			return nil, err
		}
		act[i] = s.snap.cfg.Eval(d)
	}

	return act, nil
}

// PoseCount returns N of the cached rebuild, or ErrNotReady.
func (s *Solver) PoseCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Ready {
		return 0, ErrNotReady
	}

	return len(s.snap.inputs), nil
}

// KernelConfig returns the (radius-clamped) configuration of the cached rebuild.
func (s *Solver) KernelConfig() (KernelConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Ready {
		return KernelConfig{}, ErrNotReady
	}

	return s.snap.cfg, nil
}

// Weights returns a copy of the cached N×m weight matrix.
func (s *Solver) Weights() (*matrix.Dense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Ready {
		return nil, ErrNotReady
	}

	return s.snap.weights.Clone().(*matrix.Dense), nil
}
