package imggen

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestChessboard(t *testing.T) {
	g, err := Chessboard(10, 4)
	if err != nil {
		t.Fatalf("Chessboard failed: %v", err)
	}
	if g.W != 40 || g.H != 40 {
		t.Fatalf("shape = %dx%d, want 40x40", g.W, g.H)
	}

	// Top-left tile is all zeros, the tile to its right all ones.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := g.At(x, y); got != 0 {
				t.Fatalf("tile (0,0) pixel (%d,%d) = %v, want 0", x, y, got)
			}
			if got := g.At(x+10, y); got != 1 {
				t.Fatalf("tile (0,1) pixel (%d,%d) = %v, want 1", x+10, y, got)
			}
		}
	}

	// The pattern alternates both ways: tile (1,1) is back to zero.
	if got := g.At(15, 15); got != 0 {
		t.Errorf("tile (1,1) center = %v, want 0", got)
	}
}

func TestChessboardOddBoard(t *testing.T) {
	if _, err := Chessboard(10, 3); !errors.Is(err, ErrOddBoardSize) {
		t.Errorf("err = %v, want ErrOddBoardSize", err)
	}
}

func TestChessboardBadParams(t *testing.T) {
	tests := []struct {
		name             string
		tileSize, nBoard int
	}{
		{"zero tile", 0, 4},
		{"negative tile", -5, 4},
		{"zero board", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Chessboard(tt.tileSize, tt.nBoard); !errors.Is(err, ErrBadBoardParam) {
				t.Errorf("err = %v, want ErrBadBoardParam", err)
			}
		})
	}
}

func TestPhoto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	writeTestPNG(t, path, 64, 48)

	g, err := Photo(path)
	if err != nil {
		t.Fatalf("Photo failed: %v", err)
	}
	if g.W != PhotoSide || g.H != PhotoSide {
		t.Errorf("shape = %dx%d, want %dx%d", g.W, g.H, PhotoSide, PhotoSide)
	}
}

func TestPhotoMissingAsset(t *testing.T) {
	if _, err := Photo(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing asset")
	}
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
}
