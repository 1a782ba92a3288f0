package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore is the degraded-mode backend: one JSON array file per
// collection under dataDir, rewritten in full on every append. Appends
// hold a process-wide mutex so concurrent handlers cannot interleave
// the read-modify-write cycle; concurrent writers from other processes
// are out of scope.
type FileStore struct {
	mu      sync.Mutex
	dataDir string
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

// load reads a collection file. A missing or corrupt file yields no
// records rather than an error.
func (s *FileStore) load(collection string) []Record {
	content, err := os.ReadFile(s.path(collection))
	if err != nil {
		return nil
	}
	var records []Record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil
	}
	return records
}

func (s *FileStore) Save(_ context.Context, collection string, doc interface{}) error {
	// normalize the document through JSON so file records match what
	// List later decodes
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", collection, err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return fmt.Errorf("normalize %s record: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	records := append(s.load(collection), rec)
	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s collection: %w", collection, err)
	}
	if err := os.WriteFile(s.path(collection), out, 0o644); err != nil {
		return fmt.Errorf("write %s file: %w", collection, err)
	}
	return nil
}

// List returns records in reverse insertion order; the file has no
// native sort so recency is approximated by appending order.
func (s *FileStore) List(_ context.Context, collection, _ string, limit int64) ([]Record, error) {
	s.mu.Lock()
	records := s.load(collection)
	s.mu.Unlock()

	reversed := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}
	if limit > 0 && int64(len(reversed)) > limit {
		reversed = reversed[:limit]
	}
	return reversed, nil
}
