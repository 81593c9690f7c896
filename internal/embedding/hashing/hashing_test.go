package hashing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedDeterministic(t *testing.T) {
	e := NewEmbedder(DefaultDimension)

	first, err := e.Embed([]string{"PM2.5 causes respiratory disease"})
	require.NoError(t, err)
	second, err := e.Embed([]string{"PM2.5 causes respiratory disease"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmbedNormalized(t *testing.T) {
	e := NewEmbedder(DefaultDimension)

	vectors, err := e.Embed([]string{"ozone levels rise on hot summer afternoons"})
	require.NoError(t, err)
	require.Len(t, vectors, 1)
	require.Len(t, vectors[0], DefaultDimension)

	var sum float64
	for _, v := range vectors[0] {
		sum += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-4)
}

func TestEmbedTokenBuckets(t *testing.T) {
	// FNV-1a 32 of "air" is 858933783 and of "quality" is 2597670950,
	// landing in buckets 279 and 38 modulo 384.
	e := NewEmbedder(DefaultDimension)

	vectors, err := e.Embed([]string{"Air QUALITY"})
	require.NoError(t, err)

	vec := vectors[0]
	inv := float32(1 / math.Sqrt2)
	assert.InDelta(t, inv, vec[279], 1e-6)
	assert.InDelta(t, inv, vec[38], 1e-6)
	for i, v := range vec {
		if i == 279 || i == 38 {
			continue
		}
		assert.Zero(t, v, "bucket %d", i)
	}
}

func TestEmbedTermFrequency(t *testing.T) {
	e := NewEmbedder(DefaultDimension)

	vectors, err := e.Embed([]string{"air air quality"})
	require.NoError(t, err)

	// Counts are 2 and 1 before normalization, so the "air" bucket
	// must carry 2/sqrt(5) and the "quality" bucket 1/sqrt(5).
	vec := vectors[0]
	assert.InDelta(t, 2/math.Sqrt(5), float64(vec[279]), 1e-6)
	assert.InDelta(t, 1/math.Sqrt(5), float64(vec[38]), 1e-6)
}

func TestEmbedEmptyText(t *testing.T) {
	e := NewEmbedder(DefaultDimension)

	vectors, err := e.Embed([]string{"", "   ...!!!"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	for _, vec := range vectors {
		for _, v := range vec {
			assert.Zero(t, v)
		}
	}
}

func TestNewEmbedderDimension(t *testing.T) {
	assert.Equal(t, 16, NewEmbedder(16).Dimension())
	assert.Equal(t, DefaultDimension, NewEmbedder(0).Dimension())
	assert.Equal(t, DefaultDimension, NewEmbedder(-3).Dimension())
}
