package flowgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/flowbench/flowbench/internal/field"
)

var (
	// ErrZeroDirection is returned by Uniform when the direction vector is
	// zero, which would make the magnitude rescale divide by zero.
	ErrZeroDirection = errors.New("flowgen: direction vector must be non-zero")
)

// DefaultDirection is the direction used by Uniform when callers have no
// preference: one pixel right, one pixel down.
const DefaultDirection = 1 + 1i

// DefaultMaxMagnitude is the peak magnitude used by the random generators
// when callers have no preference.
const DefaultMaxMagnitude = 10.0

// defaultRNGSeed keeps nil-RNG calls reproducible. Arbitrary but stable.
const defaultRNGSeed int64 = 1

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(defaultRNGSeed))
	}
	return rng
}

// Uniform returns a w-by-h field in which every cell holds the same vector:
// dir rescaled to length maxMag.
//
// Returns ErrZeroDirection when dir is zero and field.ErrNonPositiveMagnitude
// when maxMag <= 0.
func Uniform(w, h int, dir complex128, maxMag float64) (*field.Flow, error) {
	if dir == 0 {
		return nil, ErrZeroDirection
	}
	f, err := field.NewFlow(w, h)
	if err != nil {
		return nil, err
	}
	for i := range f.Vec {
		f.Vec[i] = dir
	}
	if err := f.Normalize(maxMag); err != nil {
		return nil, fmt.Errorf("uniform flow: %w", err)
	}
	return f, nil
}

// Quadratic returns a w-by-h field sampled from f(z) = a + b*z + c*z^2 with
// independent standard-normal coefficients a, b, c, rescaled so the peak
// vector length equals maxMag.
//
// The grid is z = x + i*y with x linear over [0,1] across columns and y
// linear over [0,1] across rows. Single-row or single-column fields collapse
// the degenerate axis to 0.
func Quadratic(w, h int, maxMag float64, rng *rand.Rand) (*field.Flow, error) {
	rng = ensureRNG(rng)
	f, err := field.NewFlow(w, h)
	if err != nil {
		return nil, err
	}
	a := complex(rng.NormFloat64(), 0)
	b := complex(rng.NormFloat64(), 0)
	c := complex(rng.NormFloat64(), 0)

	for y := 0; y < h; y++ {
		fy := axisCoord(y, h)
		for x := 0; x < w; x++ {
			z := complex(axisCoord(x, w), fy)
			f.Set(x, y, a+b*z+c*z*z)
		}
	}
	if err := f.Normalize(maxMag); err != nil {
		return nil, fmt.Errorf("quadratic flow: %w", err)
	}
	return f, nil
}

// axisCoord maps index i of an n-sample axis onto [0,1].
func axisCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
