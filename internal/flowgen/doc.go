// Package flowgen generates synthetic complex-valued displacement fields
// for exercising image registration algorithms.
//
// Three generators are provided:
//
//   - Uniform: a constant-vector field scaled to a target magnitude.
//   - Quadratic: a smooth analytic field from a random quadratic polynomial
//     over the complex plane.
//   - Tiled: piecewise-uniform random blocks blended into a continuous field
//     by Gaussian smoothing.
//
// Every generator rescales its output so the peak vector length equals the
// requested maximum magnitude exactly.
//
// # Determinism
//
// Random generators take an explicit *rand.Rand; there is no hidden global
// state. The same seed produces a bit-identical field. A nil RNG selects a
// fixed default seed, so accidental nils stay reproducible instead of
// becoming time-dependent. A *rand.Rand is not goroutine-safe; concurrent
// callers pass independent RNGs.
package flowgen
