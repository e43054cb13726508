package field

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateField is returned when a normalization target field has
	// zero peak magnitude, which would make the rescale divide by zero.
	ErrDegenerateField = errors.New("field: all-zero field cannot be normalized")

	// ErrNonPositiveMagnitude is returned when a requested maximum magnitude
	// is zero or negative.
	ErrNonPositiveMagnitude = errors.New("field: maximum magnitude must be positive")

	// ErrBadSize is returned when a requested plane dimension is not positive.
	ErrBadSize = errors.New("field: width and height must be positive")
)

// VecLen returns the Euclidean length of a displacement vector.
func VecLen(v complex128) float64 {
	return math.Hypot(real(v), imag(v))
}

// Flow is a 2-D plane of complex displacement vectors stored row-major.
//
// The real part of each vector is the horizontal displacement and the
// imaginary part the vertical displacement, in pixel units.
type Flow struct {
	W, H int
	Vec  []complex128
}

// NewFlow allocates a zero-valued flow plane of the given dimensions.
func NewFlow(w, h int) (*Flow, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("flow %dx%d: %w", w, h, ErrBadSize)
	}
	return &Flow{W: w, H: h, Vec: make([]complex128, w*h)}, nil
}

// At returns the vector at (x, y). No bounds checking; callers iterate
// within [0,W) x [0,H).
func (f *Flow) At(x, y int) complex128 {
	return f.Vec[y*f.W+x]
}

// Set stores the vector v at (x, y).
func (f *Flow) Set(x, y int, v complex128) {
	f.Vec[y*f.W+x] = v
}

// PeakMagnitude returns the maximum vector length over the whole plane.
// It is zero for an empty or all-zero plane.
func (f *Flow) PeakMagnitude() float64 {
	peak := 0.0
	for _, v := range f.Vec {
		if l := VecLen(v); l > peak {
			peak = l
		}
	}
	return peak
}

// Scale multiplies every vector in place by s.
func (f *Flow) Scale(s float64) {
	c := complex(s, 0)
	for i := range f.Vec {
		f.Vec[i] *= c
	}
}

// Normalize rescales the plane in place so that its peak vector length
// equals maxMag exactly.
//
// Returns ErrNonPositiveMagnitude when maxMag <= 0 and ErrDegenerateField
// when the plane's peak magnitude is zero. Both are detected before any
// division, so the plane is never left holding NaN or Inf values.
func (f *Flow) Normalize(maxMag float64) error {
	if maxMag <= 0 {
		return fmt.Errorf("normalize to %g: %w", maxMag, ErrNonPositiveMagnitude)
	}
	peak := f.PeakMagnitude()
	if peak == 0 {
		return ErrDegenerateField
	}
	f.Scale(maxMag / peak)
	return nil
}

// Clone returns an independent copy of the plane.
func (f *Flow) Clone() *Flow {
	vec := make([]complex128, len(f.Vec))
	copy(vec, f.Vec)
	return &Flow{W: f.W, H: f.H, Vec: vec}
}
