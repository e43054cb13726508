package flowgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/flowbench/flowbench/internal/field"
	"github.com/flowbench/flowbench/internal/smooth"
)

// ErrBadTileParam is returned when a tile size or filter amplitude option
// carries a non-positive value.
var ErrBadTileParam = errors.New("flowgen: tile size and filter amplitude must be positive")

type tiledConfig struct {
	tileSize  int
	filterAmp int
}

// TiledOption customizes the Tiled generator.
type TiledOption func(*tiledConfig)

// WithTileSize overrides the coarse block edge length, in pixels.
// The default is ceil(h/6), computed from the field height only; that
// asymmetry for non-square fields is a documented quirk that callers may
// rely on, so it is kept as is.
func WithTileSize(n int) TiledOption {
	return func(c *tiledConfig) { c.tileSize = n }
}

// WithFilterAmp overrides the Gaussian smoothing amplitude (the per-axis
// standard deviation). The default is ceil(tileSize/2), incremented by one
// when odd so the effective filter width is always even.
func WithFilterAmp(n int) TiledOption {
	return func(c *tiledConfig) { c.filterAmp = n }
}

// Tiled returns a w-by-h field built from piecewise-uniform random blocks.
//
// A coarse grid of ceil(h/tileSize) by ceil(w/tileSize) cells is drawn with
// both vector components independently uniform in [-maxMag, maxMag]. Each
// cell is expanded to a tileSize-square block, the oversized plane is cropped
// to (w, h) from the top-left, the two component planes are combined into one
// complex field, the field is Gaussian-smoothed with the filter amplitude on
// both axes, and finally rescaled so the peak vector length equals maxMag.
//
// The blur removes the block discontinuities while keeping the low-frequency
// structure, so larger tile sizes give slower-varying flow.
func Tiled(w, h int, maxMag float64, rng *rand.Rand, opts ...TiledOption) (*field.Flow, error) {
	if maxMag <= 0 {
		return nil, fmt.Errorf("tiled flow: %w", field.ErrNonPositiveMagnitude)
	}
	f, err := field.NewFlow(w, h)
	if err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)

	var cfg tiledConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tileSize == 0 {
		cfg.tileSize = ceilDiv(h, 6)
	}
	if cfg.filterAmp == 0 {
		cfg.filterAmp = ceilDiv(cfg.tileSize, 2)
		if cfg.filterAmp%2 != 0 {
			cfg.filterAmp++
		}
	}
	if cfg.tileSize < 0 || cfg.filterAmp < 0 {
		return nil, ErrBadTileParam
	}

	tilesY := ceilDiv(h, cfg.tileSize)
	tilesX := ceilDiv(w, cfg.tileSize)

	// Coarse grid of random components, drawn row-major so the consumption
	// order of the RNG stream is stable.
	coarse := make([]complex128, tilesY*tilesX)
	for i := range coarse {
		dx := (2*rng.Float64() - 1) * maxMag
		dy := (2*rng.Float64() - 1) * maxMag
		coarse[i] = complex(dx, dy)
	}

	// Block-expand and crop in one pass: each output pixel reads its
	// coarse cell directly.
	for y := 0; y < h; y++ {
		ty := y / cfg.tileSize
		for x := 0; x < w; x++ {
			f.Set(x, y, coarse[ty*tilesX+x/cfg.tileSize])
		}
	}

	smooth.Gaussian(f, float64(cfg.filterAmp), float64(cfg.filterAmp))

	if err := f.Normalize(maxMag); err != nil {
		return nil, fmt.Errorf("tiled flow: %w", err)
	}
	return f, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
