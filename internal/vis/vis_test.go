package vis

import (
	"testing"

	"github.com/flowbench/flowbench/internal/field"
)

func TestFlowImageZeroFieldIsWhite(t *testing.T) {
	f, _ := field.NewFlow(4, 3)
	img := FlowImage(f)

	b := img.Bounds()
	if b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("shape = %dx%d, want 4x3", b.Dx(), b.Dy())
	}
	c := img.NRGBAAt(2, 1)
	if c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("zero vector color = %v, want opaque white", c)
	}
}

func TestFlowImageDirectionHues(t *testing.T) {
	f, _ := field.NewFlow(2, 1)
	f.Set(0, 0, 5)  // rightward: hue 0, pure red at full saturation
	f.Set(1, 0, 5i) // downward: hue 90

	img := FlowImage(f)
	right := img.NRGBAAt(0, 0)
	if right.R != 255 || right.G != 0 || right.B != 0 {
		t.Errorf("rightward vector color = %v, want red", right)
	}
	down := img.NRGBAAt(1, 0)
	if down.R == 255 && down.G == 0 && down.B == 0 {
		t.Error("downward vector rendered with the rightward hue")
	}
}
