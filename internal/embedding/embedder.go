package embedding

// Embedder converts free text into fixed-dimension numeric vectors.
// Implementations must be deterministic: the same input text yields
// the same vector across calls and across process restarts. The store
// relies on this to rebuild its index by re-embedding persisted texts.
type Embedder interface {
	Name() string
	Dimension() int
	Embed(texts []string) ([][]float32, error)
}
