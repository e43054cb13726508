// Package dataset draws registration image pairs from a CSV-described
// collection of real images, as an alternative to the synthetic scenario
// generators.
//
// The table lives at <dir>/pairs.csv and needs at least the columns
// "status", "Target image" and "Source image". Image paths are resolved
// relative to dir. Rows whose status is "training" form the sampling pool.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/flowbench/flowbench/internal/field"
)

// PairsFile is the table file name expected inside a dataset directory.
const PairsFile = "pairs.csv"

// StatusTraining marks rows eligible for sampling.
const StatusTraining = "training"

var (
	// ErrNoTrainingRows is returned when the table holds no training rows.
	ErrNoTrainingRows = errors.New("dataset: no training rows in pairs table")
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("dataset: pairs table is missing a required column")
)

// Pair is one target/source image pair, padded to a common shape.
type Pair struct {
	Target *field.Gray
	Source *field.Gray

	// TargetPath and SourcePath are the resolved paths the pair came from.
	TargetPath string
	SourcePath string
}

type pairConfig struct {
	diagonal float64
	loader   *Loader
}

// PairOption customizes pair loading.
type PairOption func(*pairConfig)

// WithDiagonal rescales both images uniformly, preserving aspect ratio, so
// that the padded pair's pixel diagonal sqrt(H^2+W^2) matches d.
func WithDiagonal(d float64) PairOption {
	return func(c *pairConfig) { c.diagonal = d }
}

// WithLoader supplies a shared image loader, so repeated draws from the same
// table reuse decoded images.
func WithLoader(l *Loader) PairOption {
	return func(c *pairConfig) { c.loader = l }
}

// RandomTrainingPair picks one training row uniformly at random from
// <dir>/pairs.csv, loads both images, pads them to their common (maximum)
// shape and returns the pair. A nil rng selects a fixed default seed.
func RandomTrainingPair(dir string, rng *rand.Rand, opts ...PairOption) (*Pair, error) {
	var cfg pairConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.loader == nil {
		cfg.loader = NewLoader()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	rows, err := trainingRows(filepath.Join(dir, PairsFile))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoTrainingRows
	}
	row := rows[rng.Intn(len(rows))]

	target, err := cfg.loader.Load(filepath.Join(dir, row[0]))
	if err != nil {
		return nil, err
	}
	source, err := cfg.loader.Load(filepath.Join(dir, row[1]))
	if err != nil {
		return nil, err
	}

	// The cache shares planes; padding and rescaling must not mutate them.
	target, source = padToCommon(target, source)
	if cfg.diagonal > 0 {
		target, source = rescaleDiagonal(target, source, cfg.diagonal)
	}
	return &Pair{
		Target:     target,
		Source:     source,
		TargetPath: filepath.Join(dir, row[0]),
		SourcePath: filepath.Join(dir, row[1]),
	}, nil
}

// trainingRows returns the (target, source) path columns of every training
// row in the table at path.
func trainingRows(path string) ([][2]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pairs table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse pairs table: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoTrainingRows
	}

	statusCol, targetCol, sourceCol := -1, -1, -1
	for i, name := range records[0] {
		switch name {
		case "status":
			statusCol = i
		case "Target image":
			targetCol = i
		case "Source image":
			sourceCol = i
		}
	}
	if statusCol < 0 || targetCol < 0 || sourceCol < 0 {
		return nil, fmt.Errorf("%w: need status, Target image, Source image", ErrMissingColumn)
	}

	var rows [][2]string
	for _, rec := range records[1:] {
		if rec[statusCol] == StatusTraining {
			rows = append(rows, [2]string{rec[targetCol], rec[sourceCol]})
		}
	}
	return rows, nil
}

// padToCommon zero-pads both planes on the bottom and right to their
// elementwise maximum shape. Inputs are left untouched.
func padToCommon(a, b *field.Gray) (*field.Gray, *field.Gray) {
	w := a.W
	if b.W > w {
		w = b.W
	}
	h := a.H
	if b.H > h {
		h = b.H
	}
	return padTo(a, w, h), padTo(b, w, h)
}

func padTo(g *field.Gray, w, h int) *field.Gray {
	if g.W == w && g.H == h {
		return g.Clone()
	}
	out, _ := field.NewGray(w, h)
	for y := 0; y < g.H; y++ {
		copy(out.Pix[y*w:y*w+g.W], g.Pix[y*g.W:(y+1)*g.W])
	}
	return out
}

// rescaleDiagonal resizes both planes by the ratio that brings their shared
// diagonal pixel count to diag, preserving aspect ratio. Both planes share
// a shape on entry (padToCommon runs first), so one ratio serves both.
func rescaleDiagonal(a, b *field.Gray, diag float64) (*field.Gray, *field.Gray) {
	ratio := diag / math.Hypot(float64(a.H), float64(a.W))
	return resizeByRatio(a, ratio), resizeByRatio(b, ratio)
}

func resizeByRatio(g *field.Gray, ratio float64) *field.Gray {
	w := int(math.Round(float64(g.W) * ratio))
	h := int(math.Round(float64(g.H) * ratio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	resized := imaging.Resize(g.ToImage(), w, h, imaging.Lanczos)
	return field.GrayFromImage(resized)
}
