// Package scenario composes an image generator, a flow generator and the
// warp step into complete (original, warped, flow) fixture triples.
package scenario

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/flowbench/flowbench/internal/field"
	"github.com/flowbench/flowbench/internal/flowgen"
	"github.com/flowbench/flowbench/internal/imggen"
	"github.com/flowbench/flowbench/internal/warp"
)

// ImageKind selects the base image generator.
type ImageKind int

const (
	// ImagePhoto uses the fixed grayscale reference photograph.
	ImagePhoto ImageKind = iota
	// ImageChess uses the synthetic checkerboard.
	ImageChess
)

// FlowKind selects the displacement field generator.
type FlowKind int

const (
	// FlowQuadratic samples a random quadratic polynomial over the plane.
	FlowQuadratic FlowKind = iota
	// FlowTiled blends piecewise-uniform random blocks with Gaussian blur.
	FlowTiled
	// FlowUniform uses one constant vector everywhere.
	FlowUniform
)

var (
	// ErrUnknownImageKind is returned for ImageKind values outside the
	// declared set.
	ErrUnknownImageKind = errors.New("scenario: unknown image kind")
	// ErrUnknownFlowKind is returned for FlowKind values outside the
	// declared set.
	ErrUnknownFlowKind = errors.New("scenario: unknown flow kind")
)

// Config selects and parameterizes the generators for one scenario.
//
// Zero values select the defaults: reference photo, quadratic flow, default
// maximum magnitude, default checkerboard geometry, fixed-seed RNG.
type Config struct {
	Image ImageKind
	Flow  FlowKind

	// PhotoPath locates the reference photo asset when Image == ImagePhoto.
	PhotoPath string

	// ChessTileSize and ChessBoardSize parameterize the checkerboard when
	// Image == ImageChess. Zero selects the defaults (50, 4).
	ChessTileSize  int
	ChessBoardSize int

	// MaxMagnitude is the peak vector length of the generated flow.
	// Zero selects the default (10; for uniform flow, the direction length).
	MaxMagnitude float64

	// Direction is the constant vector for FlowUniform. Zero selects the
	// default 1+1i.
	Direction complex128

	// TiledOpts tune the tiled generator (tile size, filter amplitude).
	TiledOpts []flowgen.TiledOption

	// Rand drives the random generators. Nil selects a fixed default seed.
	Rand *rand.Rand
}

// Scenario is one generated fixture triple. The flow holds forward
// displacements from Image to Warped.
type Scenario struct {
	Image  *field.Gray
	Warped *field.Gray
	Flow   *field.Flow
}

// Generate builds the base image, sizes a flow from the image shape, warps
// the image by the negated flow components and returns the triple.
//
// The image is generated first and the flow second, so the shapes always
// match. The warp consumes (-Re(flow), -Im(flow)) because the flow stores
// the forward displacement while the resampler needs the backward mapping.
func Generate(cfg Config) (*Scenario, error) {
	img, err := buildImage(cfg)
	if err != nil {
		return nil, err
	}
	flow, err := buildFlow(cfg, img.W, img.H)
	if err != nil {
		return nil, err
	}
	warped, err := warp.Displace(img, flow)
	if err != nil {
		return nil, fmt.Errorf("warp scenario image: %w", err)
	}
	return &Scenario{Image: img, Warped: warped, Flow: flow}, nil
}

func buildImage(cfg Config) (*field.Gray, error) {
	switch cfg.Image {
	case ImagePhoto:
		return imggen.Photo(cfg.PhotoPath)
	case ImageChess:
		tile, board := cfg.ChessTileSize, cfg.ChessBoardSize
		if tile == 0 {
			tile = imggen.DefaultChessTileSize
		}
		if board == 0 {
			board = imggen.DefaultChessBoardSize
		}
		return imggen.Chessboard(tile, board)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownImageKind, cfg.Image)
	}
}

func buildFlow(cfg Config, w, h int) (*field.Flow, error) {
	maxMag := cfg.MaxMagnitude
	switch cfg.Flow {
	case FlowQuadratic:
		if maxMag == 0 {
			maxMag = flowgen.DefaultMaxMagnitude
		}
		return flowgen.Quadratic(w, h, maxMag, cfg.Rand)
	case FlowTiled:
		if maxMag == 0 {
			maxMag = flowgen.DefaultMaxMagnitude
		}
		return flowgen.Tiled(w, h, maxMag, cfg.Rand, cfg.TiledOpts...)
	case FlowUniform:
		dir := cfg.Direction
		if dir == 0 {
			dir = flowgen.DefaultDirection
		}
		if maxMag == 0 {
			maxMag = field.VecLen(dir)
		}
		return flowgen.Uniform(w, h, dir, maxMag)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFlowKind, cfg.Flow)
	}
}
