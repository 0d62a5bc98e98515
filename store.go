package travelbuddy

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Storage keys. Each key holds one independent JSON document; there is no
// transactional guarantee across keys.
const (
	KeyTrips    = "trips"
	KeyBudget   = "budget"
	KeyRegistry = "user_registry"
	KeyRole     = "role"
	KeyTheme    = "theme"
	KeyAccent   = "accent"
)

// Store is a named slot of JSON documents. Save is always a full-document
// replace. Load reports false when the slot is empty; a slot holding content
// that cannot be decoded is treated as empty too, so callers always proceed
// with a default collection.
type Store interface {
	// Load decodes the document under key into v. It returns false if there
	// is no usable document.
	Load(key string, v any) (bool, error)
	// Save encodes v and replaces the document under key.
	Save(key string, v any) error
}

// DirStore persists each key as a <key>.json file in a directory. It is the
// device-local storage origin: two directories are two independent,
// divergent copies.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir. The directory is created on the
// first Save.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) path(key string) string {
	// keys are fixed identifiers, but never trust them as paths.
	return filepath.Join(s.dir, filepath.Base(strings.TrimSpace(key))+".json")
}

func (s *DirStore) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read store key %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Malformed content is absorbed: the caller starts from empty.
		log.Printf("store key %q holds malformed content, ignoring it: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *DirStore) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		return fmt.Errorf("could not encode store key %q: %w", key, err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("could not write store key %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store, used in tests and throwaway sessions.
type MemStore struct {
	docs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

func (s *MemStore) Load(key string, v any) (bool, error) {
	data, ok := s.docs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("store key %q holds malformed content, ignoring it: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *MemStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode store key %q: %w", key, err)
	}
	s.docs[key] = data
	return nil
}

// Corrupt overwrites a key with non-JSON content. Tests use it to exercise
// the absorbed read failure path.
func (s *MemStore) Corrupt(key string) { s.docs[key] = []byte("{not json") }

var _ Store = (*DirStore)(nil)
var _ Store = (*MemStore)(nil)
