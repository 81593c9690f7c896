package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqrag/internal/domain"
)

func TestSplitShortDocumentPassesThrough(t *testing.T) {
	c := NewWindowChunker(DefaultChunkSize, DefaultOverlap)
	doc := domain.Document{
		Content:  "PM2.5 causes respiratory disease",
		Metadata: map[string]any{"source": "GuidelinesClient"},
	}

	chunks := c.Split(doc)

	require.Len(t, chunks, 1)
	assert.Equal(t, doc.Content, chunks[0].Content)
	assert.Equal(t, doc.Metadata, chunks[0].Metadata)
	_, hasIndex := chunks[0].Metadata["chunk_index"]
	assert.False(t, hasIndex, "single-window documents keep metadata as-is")
}

func TestSplitExactWindowIsSingleChunk(t *testing.T) {
	c := NewWindowChunker(DefaultChunkSize, DefaultOverlap)
	doc := domain.Document{Content: strings.Repeat("a", 1000)}

	chunks := c.Split(doc)

	require.Len(t, chunks, 1)
}

func TestSplitChunkCount(t *testing.T) {
	// For content of length L > 1000 with window 1000 and stride 800
	// the chunk count is ceil((L-1000)/800)+1.
	cases := []struct {
		length int
		want   int
	}{
		{1001, 2},
		{1800, 2},
		{1801, 3},
		{2500, 3},
		{2600, 3},
		{5000, 6},
	}
	c := NewWindowChunker(DefaultChunkSize, DefaultOverlap)
	for _, tc := range cases {
		chunks := c.Split(domain.Document{Content: strings.Repeat("x", tc.length)})
		assert.Len(t, chunks, tc.want, "length %d", tc.length)
	}
}

func TestSplitWindowOffsets(t *testing.T) {
	c := NewWindowChunker(DefaultChunkSize, DefaultOverlap)
	content := make([]rune, 2500)
	for i := range content {
		content[i] = rune('a' + i%26)
	}
	doc := domain.Document{Content: string(content), Metadata: map[string]any{"type": "guidelines"}}

	chunks := c.Split(doc)

	require.Len(t, chunks, 3)
	assert.Equal(t, string(content[0:1000]), chunks[0].Content)
	assert.Equal(t, string(content[800:1800]), chunks[1].Content)
	assert.Equal(t, string(content[1600:2500]), chunks[2].Content)
	for i, ch := range chunks {
		assert.Equal(t, i, ch.Metadata["chunk_index"])
		assert.Equal(t, "guidelines", ch.Metadata["type"])
	}
	// Parent metadata must not be mutated by the copies.
	_, hasIndex := doc.Metadata["chunk_index"]
	assert.False(t, hasIndex)
}

func TestSplitCoverageReconstructsContent(t *testing.T) {
	c := NewWindowChunker(DefaultChunkSize, DefaultOverlap)
	content := strings.Repeat("air quality and weather text ", 150) // 4350 chars
	chunks := c.Split(domain.Document{Content: content})
	require.Greater(t, len(chunks), 1)

	var b strings.Builder
	b.WriteString(chunks[0].Content)
	for _, ch := range chunks[1:] {
		b.WriteString(string([]rune(ch.Content)[DefaultOverlap:]))
	}
	assert.Equal(t, content, b.String())
}

func TestSplitMultiByteContent(t *testing.T) {
	c := NewWindowChunker(10, 2)
	content := strings.Repeat("µg/m³ NO₂ ", 4) // 40 runes
	chunks := c.Split(domain.Document{Content: content})

	var b strings.Builder
	b.WriteString(chunks[0].Content)
	for _, ch := range chunks[1:] {
		b.WriteString(string([]rune(ch.Content)[2:]))
	}
	assert.Equal(t, content, b.String())
}

func TestNewWindowChunkerClampsBadValues(t *testing.T) {
	c := NewWindowChunker(0, -5)
	assert.Equal(t, DefaultChunkSize, c.chunkSize)
	assert.Equal(t, 0, c.overlap)

	c = NewWindowChunker(100, 150)
	assert.Equal(t, 25, c.overlap)
}
