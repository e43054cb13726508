// Package imggen produces the base images that scenarios are built from:
// a fixed grayscale reference photo and a synthetic checkerboard.
package imggen

import (
	"errors"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/flowbench/flowbench/internal/field"
)

// ErrOddBoardSize is returned when a checkerboard is requested with an odd
// board size. The 2x2 repeat unit only tiles cleanly an even number of
// times, so an odd count would silently truncate the pattern.
var ErrOddBoardSize = errors.New("imggen: board size must be even")

// ErrBadBoardParam is returned when a checkerboard parameter is not positive.
var ErrBadBoardParam = errors.New("imggen: tile size and board size must be positive")

// PhotoSide is the edge length of the reference photo, in pixels.
const PhotoSide = 256

// Photo loads the reference photograph from path, converts it to grayscale
// and resizes it to the fixed 256x256 fixture size.
func Photo(path string) (*field.Gray, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load reference photo: %w", err)
	}
	resized := imaging.Resize(imaging.Grayscale(img), PhotoSide, PhotoSide, imaging.Lanczos)
	return field.GrayFromImage(resized), nil
}

// DefaultChessTileSize and DefaultChessBoardSize are the checkerboard
// parameters used when callers have no preference.
const (
	DefaultChessTileSize  = 50
	DefaultChessBoardSize = 4
)

// Chessboard builds a boardSize-by-boardSize checkerboard of alternating
// 0 and 1 intensity tiles, each tileSize pixels square, by scaling up a 2x2
// repeat unit. boardSize must be even; see ErrOddBoardSize.
func Chessboard(tileSize, boardSize int) (*field.Gray, error) {
	if tileSize <= 0 || boardSize <= 0 {
		return nil, fmt.Errorf("chessboard %dx%d tiles of %dpx: %w",
			boardSize, boardSize, tileSize, ErrBadBoardParam)
	}
	if boardSize%2 != 0 {
		return nil, fmt.Errorf("chessboard with %d tiles per side: %w", boardSize, ErrOddBoardSize)
	}

	side := tileSize * boardSize
	g, err := field.NewGray(side, side)
	if err != nil {
		return nil, err
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if (x/tileSize+y/tileSize)%2 == 1 {
				g.Set(x, y, 1)
			}
		}
	}
	return g, nil
}
