package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/celestial/celestial-chronicles/internal/model"
)

// JSONFileStore persists progress records as JSON files in a directory, one
// file per key. Writes go through a temp file and rename so a crash cannot
// leave a truncated record.
type JSONFileStore struct {
	dir string
}

// NewJSONFile creates a store rooted at dir. The directory is created on
// first save.
func NewJSONFile(dir string) *JSONFileStore {
	return &JSONFileStore{dir: dir}
}

func (s *JSONFileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads and decodes the record under key.
func (s *JSONFileStore) Load(ctx context.Context, key string) (*model.UserProgress, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read progress file: %w", err)
	}
	var p model.UserProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode progress file: %w", err)
	}
	return &p, nil
}

// Save writes the serialized record under key.
func (s *JSONFileStore) Save(ctx context.Context, key string, p *model.UserProgress) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	payload, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write progress file: %w", err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}

// Ping verifies the directory is usable (or creatable).
func (s *JSONFileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return os.MkdirAll(s.dir, 0o755)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *JSONFileStore) Close() error { return nil }
