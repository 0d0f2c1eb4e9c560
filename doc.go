// Package posespace is a pose-space deformation toolkit: radial basis
// function interpolation that maps a driver vector (a joint rotation, a
// control position) onto a blend of target output vectors.
//
// 🚀 What is posespace?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Dense linear algebra: row-major matrices, product, Gauss–Jordan inverse
//		• Five kernels: linear, gaussian, cubic, inverse multiquadric, quintic
//		• A Solver with an explicit Ready / NotReady lifecycle
//		• Output normalization: clamp-and-sum, min-shift-and-sum
//		• A rig host node with sparse attributes and dirty tracking
//		• YAML rig files and the rbfsolve command
//
// ✨ Why choose posespace?
//
//   - Exact interpolation: every training pose reproduces its output
//   - Safe rebuilds: a failed rebuild never leaves stale weights behind
//   - Explicit dimension contract: pad/truncate or strict, per solver
//   - Concurrent evaluation against an immutable cached snapshot
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/        Dense storage, Mul, VecMul, Transpose, Inverse, validators
//	rbf/           kernels, kernel matrix, weight solve, Solver, normalizers
//	posenode/      host node: attributes, sparse targets, dirty tracking, Output
//	config/        YAML rig files (poses, drivers, kernel, radius, normalization)
//	cmd/rbfsolve/  eval, inspect and kernels subcommands
//
// Quick ASCII example:
//
//	  rest [0] ──────●─────── bent [1]
//	  out (1,0)   driver 0.5  out (0,1)
//
//	blends both targets equally.
//
//	go install github.com/katalvlaran/posespace/cmd/rbfsolve@latest
package posespace
