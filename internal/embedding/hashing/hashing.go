package hashing

import (
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// DefaultDimension is the embedding width used when none is configured.
const DefaultDimension = 384

// Embedder maps text to a term-frequency histogram over hashed token
// buckets, L2-normalized. It is a pure function of the input text: no
// vocabulary, no corpus pass, no external calls, so identical text
// always produces the identical vector.
type Embedder struct {
	dimension    int
	tokenPattern *regexp.Regexp
}

// NewEmbedder creates a hashing embedder with the given vector width.
func NewEmbedder(dimension int) *Embedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Embedder{
		dimension:    dimension,
		tokenPattern: regexp.MustCompile(`\w+`),
	}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "hashing" }

// Dimension returns the width of the produced vectors.
func (e *Embedder) Dimension() int { return e.dimension }

// Embed returns one vector per input text. A text with no tokens maps
// to the zero vector, which is left unnormalized.
func (e *Embedder) Embed(texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = e.embedOne(text)
	}
	return vectors, nil
}

func (e *Embedder) embedOne(text string) []float32 {
	vec := make([]float32, e.dimension)
	tokens := e.tokenPattern.FindAllString(strings.ToLower(text), -1)
	for _, tok := range tokens {
		vec[e.bucket(tok)]++
	}
	normalize(vec)
	return vec
}

// bucket hashes a token with FNV-1a over its UTF-8 bytes. FNV is fully
// specified and stable across processes and platforms, unlike
// per-process seeded hashes.
func (e *Embedder) bucket(token string) int {
	h := fnv.New32a()
	h.Write([]byte(token))
	return int(h.Sum32() % uint32(e.dimension))
}

func normalize(vec []float32) {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
}
