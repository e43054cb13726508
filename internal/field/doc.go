// Package field provides the core data model of the toolkit: grayscale
// intensity planes and complex-valued displacement fields ("flows").
//
// # Coordinate System
//
// Both types are row-major with (0,0) at the top-left corner, X increasing
// rightward and Y increasing downward. A flow vector's real part is the
// horizontal displacement and its imaginary part the vertical displacement,
// both in pixel units.
//
// # Normalization
//
// Flow generators share one normalization rule: after generation the field is
// rescaled so that its peak vector length equals the requested maximum
// magnitude exactly. Normalize implements that rule and rejects the two
// degenerate inputs (an all-zero field, a non-positive target) with sentinel
// errors so that NaN or Inf values can never leak into a fixture.
//
// # Ownership
//
// All planes are freshly allocated per call and owned exclusively by the
// caller upon return. Nothing in this package caches or pools.
package field
