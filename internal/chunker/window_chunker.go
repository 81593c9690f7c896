package chunker

import (
	"maps"

	"aqrag/internal/domain"
)

// DefaultChunkSize is the window width in characters.
const DefaultChunkSize = 1000

// DefaultOverlap is how many characters consecutive windows share.
const DefaultOverlap = 200

// WindowChunker splits long documents into fixed-size overlapping
// character windows. Offsets are in runes so multi-byte characters
// (µg/m³ and similar units appear throughout the guideline text) are
// never split mid-encoding.
type WindowChunker struct {
	chunkSize int
	overlap   int
}

// NewWindowChunker creates a chunker with the given window size and
// overlap. Out-of-range values fall back to conservative defaults.
func NewWindowChunker(chunkSize, overlap int) *WindowChunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &WindowChunker{chunkSize: chunkSize, overlap: overlap}
}

// Split always returns at least one chunk. Documents that fit in a
// single window pass through with their metadata untouched; longer
// documents become overlapping windows, each carrying a copy of the
// parent metadata plus its chunk_index. Windows stop as soon as one
// reaches the end of the content, so no trailing window covers only
// ground the previous one already covered.
func (c *WindowChunker) Split(document domain.Document) []domain.Chunk {
	content := []rune(document.Content)
	if len(content) <= c.chunkSize {
		return []domain.Chunk{{Content: document.Content, Metadata: document.Metadata}}
	}

	stride := c.chunkSize - c.overlap
	var chunks []domain.Chunk
	for i := 0; ; i++ {
		start := i * stride
		end := start + c.chunkSize
		if end > len(content) {
			end = len(content)
		}
		meta := maps.Clone(document.Metadata)
		if meta == nil {
			meta = make(map[string]any, 1)
		}
		meta["chunk_index"] = i
		chunks = append(chunks, domain.Chunk{Content: string(content[start:end]), Metadata: meta})
		if end == len(content) {
			break
		}
	}
	return chunks
}
