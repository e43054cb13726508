// Package vis renders displacement fields as color images for eyeballing
// generated fixtures: hue encodes vector direction and saturation encodes
// magnitude relative to the field's peak.
package vis

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/flowbench/flowbench/internal/field"
)

// FlowImage renders the flow with the standard direction color wheel:
// rightward is red, the hue advances counterclockwise, zero vectors are
// white. An all-zero field renders fully white.
func FlowImage(f *field.Flow) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	peak := f.PeakMagnitude()

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			v := f.At(x, y)
			sat := 0.0
			if peak > 0 {
				sat = field.VecLen(v) / peak
			}
			hue := math.Atan2(imag(v), real(v)) * 180 / math.Pi
			if hue < 0 {
				hue += 360
			}
			c := colorful.Hsv(hue, sat, 1)
			r, g, b := c.RGB255()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}
