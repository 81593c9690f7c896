// Package store is the facade over chunking, embedding, indexing, and
// persistence. It owns the retrieval state for the process.
package store

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"aqrag/internal/domain"
	"aqrag/internal/embedding"
	"aqrag/internal/filter"
	"aqrag/internal/index"
	"aqrag/internal/snapshot"
)

// ErrNotInitialized is returned when an operation runs before Initialize.
var ErrNotInitialized = errors.New("store: not initialized")

// Store orchestrates initialize → add documents → search. Writes are
// serialized behind the write lock; searches share the read lock, so
// a search never observes a half-applied batch.
type Store struct {
	mu          sync.RWMutex
	embedder    embedding.Embedder
	chunker     domain.Chunker
	snapshots   *snapshot.FileStore
	index       *index.Flat
	initialized bool
}

// New wires a store from its collaborators. Initialize must be called
// before any other operation.
func New(emb embedding.Embedder, ch domain.Chunker, snapshots *snapshot.FileStore) *Store {
	return &Store{embedder: emb, chunker: ch, snapshots: snapshots}
}

// Initialize constructs an empty index and rebuilds it from the
// persisted corpus, if any. An unreadable snapshot downgrades to an
// empty corpus rather than failing startup: the document catalogs can
// always repopulate the store.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ix, err := index.NewFlat(s.embedder.Dimension())
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	s.index = ix
	s.initialized = true

	texts, metadata, err := s.snapshots.Load()
	if err != nil {
		log.Printf("store: discarding unreadable snapshot: %v", err)
		return nil
	}
	if len(texts) == 0 {
		return nil
	}
	vectors, err := s.embedder.Embed(texts)
	if err != nil {
		return fmt.Errorf("re-embed persisted corpus: %w", err)
	}
	if err := s.index.Add(vectors, texts, metadata); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	log.Printf("store: restored %d chunks from snapshot", len(texts))
	return nil
}

// Count returns the number of indexed chunks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return 0
	}
	return s.index.Len()
}

// AddDocuments chunks, embeds, indexes, and persists a batch. The
// batch is all-or-nothing up to the index: if embedding or the append
// fails, nothing is committed and nothing is saved. A failed save
// after a successful append is logged and tolerated; the in-memory
// index stays authoritative until the next successful save.
//
// Re-adding the same documents accumulates duplicate entries. There is
// no dedup or deletion; callers refreshing a catalog accept that.
func (s *Store) AddDocuments(documents []domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrNotInitialized
	}

	var texts []string
	var metadata []map[string]any
	for _, doc := range documents {
		for _, chunk := range s.chunker.Split(doc) {
			texts = append(texts, chunk.Content)
			metadata = append(metadata, chunk.Metadata)
		}
	}
	if len(texts) == 0 {
		return nil
	}

	vectors, err := s.embedder.Embed(texts)
	if err != nil {
		return fmt.Errorf("embed batch: %w", err)
	}
	if err := s.index.Add(vectors, texts, metadata); err != nil {
		return fmt.Errorf("index batch: %w", err)
	}
	if err := s.snapshots.Save(s.index.Texts(), s.index.Metadatas()); err != nil {
		log.Printf("store: snapshot save failed, continuing in memory: %v", err)
	}
	log.Printf("store: added %d chunks from %d documents", len(texts), len(documents))
	return nil
}

// SimilaritySearch embeds the query, ranks every indexed chunk by
// cosine similarity, prunes candidates failing the metadata criteria,
// and returns at most k results in descending score order. An empty
// index yields an empty result without error.
func (s *Store) SimilaritySearch(query string, k int, criteria map[string]any) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	if s.index.Len() == 0 || k <= 0 {
		return nil, nil
	}

	vectors, err := s.embedder.Embed([]string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results := make([]domain.SearchResult, 0, k)
	for _, hit := range s.index.Search(vectors[0], k) {
		metadata := s.index.Metadata(hit.Position)
		if !filter.Matches(metadata, criteria) {
			continue
		}
		results = append(results, domain.SearchResult{
			Content:  s.index.Text(hit.Position),
			Score:    hit.Score,
			Metadata: metadata,
		})
	}
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
