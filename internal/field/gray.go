package field

import (
	"fmt"
	"image"
	"image/color"
)

// Gray is a 2-D plane of real-valued intensities stored row-major.
//
// Values carry whatever range the source produced; no normalization is
// enforced. ToImage clamps to [0,255] on the way out.
type Gray struct {
	W, H int
	Pix  []float64
}

// NewGray allocates a zero-valued intensity plane of the given dimensions.
func NewGray(w, h int) (*Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("gray %dx%d: %w", w, h, ErrBadSize)
	}
	return &Gray{W: w, H: h, Pix: make([]float64, w*h)}, nil
}

// At returns the intensity at (x, y).
func (g *Gray) At(x, y int) float64 {
	return g.Pix[y*g.W+x]
}

// Set stores the intensity v at (x, y).
func (g *Gray) Set(x, y int, v float64) {
	g.Pix[y*g.W+x] = v
}

// Clone returns an independent copy of the plane.
func (g *Gray) Clone() *Gray {
	pix := make([]float64, len(g.Pix))
	copy(pix, g.Pix)
	return &Gray{W: g.W, H: g.H, Pix: pix}
}

// GrayFromImage converts any image to an intensity plane in [0,255] using
// ITU-R BT.601 luminance weights (0.299 R + 0.587 G + 0.114 B). Pixels that
// are already color.Gray pass through without the weighted sum.
func GrayFromImage(img image.Image) *Gray {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	g := &Gray{W: w, H: h, Pix: make([]float64, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if gc, ok := c.(color.Gray); ok {
				g.Pix[y*w+x] = float64(gc.Y)
				continue
			}
			r, gr, b, _ := c.RGBA()
			// RGBA components are 16-bit; fold to 8-bit range.
			lum := (299*float64(r) + 587*float64(gr) + 114*float64(b)) / 1000
			g.Pix[y*w+x] = lum / 257
		}
	}
	return g
}

// ToImageScaled renders the plane as an 8-bit grayscale image with the
// peak value mapped to 255. Useful for planes in synthetic ranges such as
// the 0/1 checkerboard. An all-zero plane renders as black.
func (g *Gray) ToImageScaled() *image.Gray {
	peak := 0.0
	for _, v := range g.Pix {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return image.NewGray(image.Rect(0, 0, g.W, g.H))
	}
	scaled := &Gray{W: g.W, H: g.H, Pix: make([]float64, len(g.Pix))}
	for i, v := range g.Pix {
		scaled.Pix[i] = 255 * v / peak
	}
	return scaled.ToImage()
}

// ToImage renders the plane as an 8-bit grayscale image, clamping each
// value to [0,255].
func (g *Gray) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := g.Pix[y*g.W+x]
			switch {
			case v < 0:
				v = 0
			case v > 255:
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v + 0.5)})
		}
	}
	return img
}
