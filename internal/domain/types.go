package domain

// Document is a single passage handed to the store by a data client.
// Metadata carries arbitrary tags (type, category, source, location).
type Document struct {
	Content  string
	Metadata map[string]any
}

// Chunk is a bounded-length slice of a document's content carrying
// inherited metadata.
type Chunk struct {
	Content  string
	Metadata map[string]any
}

// SearchResult is a matching chunk with its cosine similarity score.
type SearchResult struct {
	Content  string
	Score    float32
	Metadata map[string]any
}

// Chunker splits documents into chunks suitable for retrieval indexing.
type Chunker interface {
	Split(document Document) []Chunk
}
