package dataset

import (
	"fmt"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/flowbench/flowbench/internal/field"
)

// Loader provides thread-safe caching of decoded grayscale planes to avoid
// redundant disk reads when many pairs are drawn from the same table.
//
// Planes are keyed by the exact path string; relative and absolute paths to
// the same file get separate entries. Cached planes stay resident until
// Evict or Clear; long batch runs over large tables should clear between
// batches to bound memory.
//
// Loader is safe for concurrent use. The cached plane itself is shared, so
// callers that mutate a loaded plane must Clone it first.
type Loader struct {
	mu     sync.RWMutex
	planes map[string]*field.Gray
}

// NewLoader creates an empty loader ready for use.
func NewLoader() *Loader {
	return &Loader{planes: make(map[string]*field.Gray)}
}

// Load returns the grayscale plane for path, decoding and converting the
// image on first use and serving the cache afterwards.
func (l *Loader) Load(path string) (*field.Gray, error) {
	l.mu.RLock()
	if g, ok := l.planes[path]; ok {
		l.mu.RUnlock()
		return g, nil
	}
	l.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset image: %w", err)
	}
	g := field.GrayFromImage(imaging.Grayscale(img))

	l.mu.Lock()
	l.planes[path] = g
	l.mu.Unlock()
	return g, nil
}

// Evict removes the entry for path, if present.
func (l *Loader) Evict(path string) {
	l.mu.Lock()
	delete(l.planes, path)
	l.mu.Unlock()
}

// Clear drops every cached plane.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.planes = make(map[string]*field.Gray)
	l.mu.Unlock()
}
