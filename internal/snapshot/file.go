// Package snapshot persists the store's corpus to disk and reads it
// back on startup.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const fileName = "vector_store.json"

// corpus is the persisted form of the store's texts and metadata.
// Vectors are deliberately absent: the embedder is deterministic, so
// they are recomputed from the texts on load. Persisting them would
// let a cached copy drift from the current embedding function.
type corpus struct {
	Texts    []string         `json:"texts"`
	Metadata []map[string]any `json:"metadata"`
	SavedAt  time.Time        `json:"saved_at"`
}

// FileStore reads and writes the corpus snapshot at a fixed location
// under the data directory.
type FileStore struct {
	path string
}

// NewFileStore creates a snapshot store rooted at dataDir.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, fileName)}
}

// Save writes the full corpus snapshot, creating the data directory
// if needed.
func (fs *FileStore) Save(texts []string, metadata []map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.Marshal(corpus{Texts: texts, Metadata: metadata, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. A missing file is not an error and
// yields an empty corpus.
func (fs *FileStore) Load() ([]string, []map[string]any, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read snapshot: %w", err)
	}
	var c corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if len(c.Texts) != len(c.Metadata) {
		return nil, nil, fmt.Errorf("snapshot has %d texts but %d metadata entries", len(c.Texts), len(c.Metadata))
	}
	return c.Texts, c.Metadata, nil
}
