// Package warp resamples grayscale planes through per-pixel displacement
// fields using backward (inverse) mapping with bilinear interpolation.
package warp

import (
	"errors"
	"fmt"
	"math"

	"github.com/flowbench/flowbench/internal/field"
)

// ErrShapeMismatch is returned when the displacement planes do not match
// the source image shape.
var ErrShapeMismatch = errors.New("warp: image and displacement shapes must match")

// Apply resamples src at (x + dx, y + dy) for every output pixel.
//
// dx and dy are backward displacements: the vector stored at an output pixel
// points at the source location to sample. Samples are bilinear; coordinates
// falling outside the source are clamped to the border so the output never
// contains invented values.
func Apply(src *field.Gray, dx, dy *field.Gray) (*field.Gray, error) {
	if dx.W != src.W || dx.H != src.H || dy.W != src.W || dy.H != src.H {
		return nil, fmt.Errorf("%w: src %dx%d, dx %dx%d, dy %dx%d",
			ErrShapeMismatch, src.W, src.H, dx.W, dx.H, dy.W, dy.H)
	}
	out, err := field.NewGray(src.W, src.H)
	if err != nil {
		return nil, err
	}

	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			sx := float64(x) + dx.At(x, y)
			sy := float64(y) + dy.At(x, y)
			out.Set(x, y, sample(src, sx, sy))
		}
	}
	return out, nil
}

// Displace is a convenience wrapper splitting a flow into its backward
// displacement planes. The flow convention is forward (source to warped), so
// the components are negated before sampling.
func Displace(src *field.Gray, flow *field.Flow) (*field.Gray, error) {
	if flow.W != src.W || flow.H != src.H {
		return nil, fmt.Errorf("%w: src %dx%d, flow %dx%d",
			ErrShapeMismatch, src.W, src.H, flow.W, flow.H)
	}
	dx, _ := field.NewGray(src.W, src.H)
	dy, _ := field.NewGray(src.W, src.H)
	for i, v := range flow.Vec {
		dx.Pix[i] = -real(v)
		dy.Pix[i] = -imag(v)
	}
	return Apply(src, dx, dy)
}

// sample reads src at the real-valued coordinate (x, y) with bilinear
// interpolation, clamping to the border.
func sample(src *field.Gray, x, y float64) float64 {
	xl := math.Floor(x)
	yl := math.Floor(y)
	xr := x - xl
	yr := y - yl

	x0 := clamp(int(xl), src.W)
	x1 := clamp(int(xl)+1, src.W)
	y0 := clamp(int(yl), src.H)
	y1 := clamp(int(yl)+1, src.H)

	top := src.At(x0, y0)*(1-xr) + src.At(x1, y0)*xr
	bot := src.At(x0, y1)*(1-xr) + src.At(x1, y1)*xr
	return top*(1-yr) + bot*yr
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
