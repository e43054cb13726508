package dataset

import (
	"errors"
	"image"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

// writeFixture lays out a dataset directory: pairs.csv plus gray PNGs of the
// given sizes filled with a constant value.
func writeFixture(t *testing.T, csvBody string, images map[string][3]int) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PairsFile), []byte(csvBody), 0o644); err != nil {
		t.Fatalf("write pairs.csv: %v", err)
	}
	for name, spec := range images {
		img := image.NewGray(image.Rect(0, 0, spec[0], spec[1]))
		for i := range img.Pix {
			img.Pix[i] = uint8(spec[2])
		}
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode %s: %v", name, err)
		}
		f.Close()
	}
	return dir
}

const header = "status,Target image,Source image\n"

func TestRandomTrainingPairPadsToCommonShape(t *testing.T) {
	dir := writeFixture(t,
		header+
			"training,target.png,source.png\n"+
			"test,other.png,other.png\n",
		map[string][3]int{
			"target.png": {8, 6, 100},
			"source.png": {6, 8, 50},
		})

	pair, err := RandomTrainingPair(dir, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("RandomTrainingPair failed: %v", err)
	}

	if pair.Target.W != 8 || pair.Target.H != 8 {
		t.Errorf("target shape = %dx%d, want 8x8", pair.Target.W, pair.Target.H)
	}
	if pair.Source.W != 8 || pair.Source.H != 8 {
		t.Errorf("source shape = %dx%d, want 8x8", pair.Source.W, pair.Source.H)
	}

	// Original content survives, padding is zero.
	if got := pair.Target.At(0, 0); got != 100 {
		t.Errorf("target content = %v, want 100", got)
	}
	if got := pair.Target.At(0, 7); got != 0 {
		t.Errorf("target bottom padding = %v, want 0", got)
	}
	if got := pair.Source.At(7, 0); got != 0 {
		t.Errorf("source right padding = %v, want 0", got)
	}
}

func TestRandomTrainingPairFiltersStatus(t *testing.T) {
	// Only one training row exists; the non-training row points at files
	// that are absent, so loading them would fail loudly.
	dir := writeFixture(t,
		header+
			"validation,missing.png,missing.png\n"+
			"training,a.png,b.png\n",
		map[string][3]int{
			"a.png": {4, 4, 10},
			"b.png": {4, 4, 20},
		})

	for seed := int64(0); seed < 5; seed++ {
		pair, err := RandomTrainingPair(dir, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if filepath.Base(pair.TargetPath) != "a.png" {
			t.Fatalf("seed %d: picked %s, want a.png", seed, pair.TargetPath)
		}
	}
}

func TestRandomTrainingPairNoTrainingRows(t *testing.T) {
	dir := writeFixture(t, header+"test,a.png,b.png\n", nil)
	if _, err := RandomTrainingPair(dir, nil); !errors.Is(err, ErrNoTrainingRows) {
		t.Errorf("err = %v, want ErrNoTrainingRows", err)
	}
}

func TestRandomTrainingPairMissingColumn(t *testing.T) {
	dir := writeFixture(t, "status,Target image\ntraining,a.png\n", nil)
	if _, err := RandomTrainingPair(dir, nil); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("err = %v, want ErrMissingColumn", err)
	}
}

func TestRandomTrainingPairMissingTable(t *testing.T) {
	if _, err := RandomTrainingPair(t.TempDir(), nil); err == nil {
		t.Error("expected error for missing pairs.csv")
	}
}

func TestRandomTrainingPairDiagonal(t *testing.T) {
	dir := writeFixture(t,
		header+"training,a.png,b.png\n",
		map[string][3]int{
			"a.png": {8, 8, 100},
			"b.png": {8, 8, 100},
		})

	want := math.Hypot(8, 8) / 2
	pair, err := RandomTrainingPair(dir, nil, WithDiagonal(want))
	if err != nil {
		t.Fatalf("RandomTrainingPair failed: %v", err)
	}
	got := math.Hypot(float64(pair.Target.H), float64(pair.Target.W))
	if math.Abs(got-want) > 1.5 {
		t.Errorf("diagonal = %v, want ~%v", got, want)
	}
	if pair.Target.W != pair.Target.H {
		t.Errorf("aspect ratio not preserved: %dx%d", pair.Target.W, pair.Target.H)
	}
}

func TestLoaderCaches(t *testing.T) {
	dir := writeFixture(t, header, map[string][3]int{"a.png": {4, 4, 30}})
	path := filepath.Join(dir, "a.png")

	l := NewLoader()
	first, err := l.Load(path)
	if err != nil {
		t.Fatalf("first load failed: %v", err)
	}

	// Remove the file; the cached plane must still be served.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}
	second, err := l.Load(path)
	if err != nil {
		t.Fatalf("cached load failed: %v", err)
	}
	if first != second {
		t.Error("cached load returned a different plane")
	}

	l.Evict(path)
	if _, err := l.Load(path); err == nil {
		t.Error("expected error after eviction of a deleted file")
	}
}
