// Package index implements an exact inner-product similarity index
// over parallel slices of vectors, chunk texts, and metadata. Entries
// are addressed by insertion position; there is no deletion or update.
// A linear scan is the right tool at this corpus scale (dozens to low
// thousands of chunks of static guideline text).
package index

import (
	"fmt"
	"sort"
)

// Flat is the brute-force index. Not safe for concurrent use; the
// owning store serializes access.
type Flat struct {
	dimension int
	vectors   [][]float32
	texts     []string
	metadata  []map[string]any
}

// Hit is one scored entry from a search.
type Hit struct {
	Score    float32
	Position int
}

// NewFlat creates an empty index for vectors of the given dimension.
func NewFlat(dimension int) (*Flat, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("index: invalid dimension %d", dimension)
	}
	return &Flat{dimension: dimension}, nil
}

// Len returns the number of indexed entries.
func (ix *Flat) Len() int { return len(ix.vectors) }

// Text returns the chunk text at an insertion position.
func (ix *Flat) Text(pos int) string { return ix.texts[pos] }

// Metadata returns the metadata at an insertion position.
func (ix *Flat) Metadata(pos int) map[string]any { return ix.metadata[pos] }

// Texts returns the underlying text slice, in insertion order. Callers
// must treat it as read-only.
func (ix *Flat) Texts() []string { return ix.texts }

// Metadatas returns the underlying metadata slice, in insertion order.
// Callers must treat it as read-only.
func (ix *Flat) Metadatas() []map[string]any { return ix.metadata }

// Add appends entries preserving order. Every row is validated before
// any is committed, so a failed call leaves the index unchanged and
// the three parallel slices never diverge in length.
func (ix *Flat) Add(vectors [][]float32, texts []string, metadatas []map[string]any) error {
	if len(vectors) != len(texts) || len(texts) != len(metadatas) {
		return fmt.Errorf("index: mismatched batch lengths %d/%d/%d",
			len(vectors), len(texts), len(metadatas))
	}
	for i, v := range vectors {
		if len(v) != ix.dimension {
			return fmt.Errorf("index: vector %d has dimension %d, want %d", i, len(v), ix.dimension)
		}
	}
	ix.vectors = append(ix.vectors, vectors...)
	ix.texts = append(ix.texts, texts...)
	ix.metadata = append(ix.metadata, metadatas...)
	return nil
}

// Search scans every entry and returns the min(k, Len) best by
// descending inner product. Indexed vectors and queries are
// pre-normalized, so the inner product is the cosine similarity.
// Exact score ties rank earlier-inserted entries first. A query of
// the wrong dimension is a caller bug and panics.
func (ix *Flat) Search(query []float32, k int) []Hit {
	if len(query) != ix.dimension {
		panic(fmt.Sprintf("index: query dimension %d, want %d", len(query), ix.dimension))
	}
	if len(ix.vectors) == 0 || k <= 0 {
		return nil
	}
	hits := make([]Hit, len(ix.vectors))
	for i, v := range ix.vectors {
		hits[i] = Hit{Score: dot(query, v), Position: i}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].Score > hits[b].Score })
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
