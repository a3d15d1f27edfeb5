package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type fileSnapshotStore struct{ dir string }

// NewFileSnapshotStore persists one JSON file per storage key inside dir,
// creating the directory if needed.
func NewFileSnapshotStore(dir string) (SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}
	return &fileSnapshotStore{dir: dir}, nil
}

// path refuses keys that could name a file outside the snapshot dir; keys
// are server-generated, so any separator or dot-segment means a forged key.
func (s *fileSnapshotStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid snapshot key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *fileSnapshotStore) Save(key string, items []LineItem) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	// write-then-rename keeps a crashed write from corrupting the snapshot
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *fileSnapshotStore) Load(key string) ([]LineItem, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return items, true, nil
}
