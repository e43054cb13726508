// Package smooth applies separable Gaussian smoothing to complex-valued
// displacement fields.
//
// The 1-D kernel is built with bild's convolution.Kernel (sigma is the
// standard deviation, kernel radius is ceil(4*sigma)) and the two separable
// passes run directly over the complex plane so real and imaginary channels
// are filtered with identical coefficients. Borders are handled by clamping
// samples to the nearest edge pixel, so a constant field stays constant.
package smooth

import (
	"math"

	"github.com/anthonynsimon/bild/convolution"

	"github.com/flowbench/flowbench/internal/field"
)

// Kernel1D returns a normalized 1-D Gaussian kernel for the given standard
// deviation. The kernel has 2*ceil(4*sigma)+1 taps. Sigma values <= 0 yield
// the identity kernel (a single unit tap).
func Kernel1D(sigma float64) []float64 {
	if sigma <= 0 {
		return []float64{1}
	}
	radius := math.Ceil(4 * sigma)
	length := 2*int(radius) + 1

	k := convolution.NewKernel(length, 1)
	sfactor := -0.5 / (sigma * sigma)
	sum := 0.0
	for i, x := 0, -radius; i < length; i, x = i+1, x+1 {
		k.Matrix[i] = math.Exp(sfactor * x * x)
		sum += k.Matrix[i]
	}
	taps := make([]float64, length)
	for i := range taps {
		taps[i] = k.Matrix[i] / sum
	}
	return taps
}

// Gaussian smooths the flow in place with per-axis standard deviations
// sigmaX (along rows) and sigmaY (along columns).
func Gaussian(f *field.Flow, sigmaX, sigmaY float64) {
	convolveRows(f, Kernel1D(sigmaX))
	convolveCols(f, Kernel1D(sigmaY))
}

func convolveRows(f *field.Flow, taps []float64) {
	if len(taps) == 1 {
		return
	}
	half := len(taps) / 2
	row := make([]complex128, f.W)
	for y := 0; y < f.H; y++ {
		copy(row, f.Vec[y*f.W:(y+1)*f.W])
		for x := 0; x < f.W; x++ {
			var sum complex128
			for t, w := range taps {
				sx := clamp(x+t-half, f.W)
				sum += row[sx] * complex(w, 0)
			}
			f.Vec[y*f.W+x] = sum
		}
	}
}

func convolveCols(f *field.Flow, taps []float64) {
	if len(taps) == 1 {
		return
	}
	half := len(taps) / 2
	col := make([]complex128, f.H)
	for x := 0; x < f.W; x++ {
		for y := 0; y < f.H; y++ {
			col[y] = f.Vec[y*f.W+x]
		}
		for y := 0; y < f.H; y++ {
			var sum complex128
			for t, w := range taps {
				sy := clamp(y+t-half, f.H)
				sum += col[sy] * complex(w, 0)
			}
			f.Vec[y*f.W+x] = sum
		}
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
