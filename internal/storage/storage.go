// Package storage provides the persisted key/value store backing the client
// session and preference state. It mirrors browser local storage: flat,
// string-valued, global to the client, last write wins.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileName is the storage file created under the state directory.
const FileName = "storage.json"

// Store is a file-backed string key/value store. The file is read once on
// open and rewritten in full on every mutation. Mutation failures are logged
// and swallowed: callers treat storage as always succeeding, so a write that
// cannot be persisted still takes effect in memory for the current process.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	logger *zap.Logger
}

// Open loads (or initializes) the store at <dir>/storage.json.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	s := &Store{
		path:   filepath.Join(dir, FileName),
		values: make(map[string]string),
		logger: logger,
	}
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		// A corrupt file is treated as empty rather than blocking the client.
		s.logger.Warn("storage file is not valid JSON, starting empty",
			zap.String("path", s.path), zap.Error(err))
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// GetDefault returns the value for key, or def when the key is absent.
func (s *Store) GetDefault(key, def string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return def
}

// GetBoolDefaultTrue reads a boolean stored as a string where only the
// literal "false" disables it; any other value, including absence, reads
// as true.
func (s *Store) GetBoolDefaultTrue(key string) bool {
	return s.GetDefault(key, "") != "false"
}

// GetBoolDefaultFalse reads a boolean stored as a string where only the
// literal "true" enables it.
func (s *Store) GetBoolDefaultFalse(key string) bool {
	return s.GetDefault(key, "") == "true"
}

// Set writes key=value and persists.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.persistLocked()
}

// Remove deletes key (if present) and persists.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	s.persistLocked()
}

// Keys returns a snapshot of all stored keys.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

func (s *Store) persistLocked() {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode storage", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Error("failed to persist storage",
			zap.String("path", s.path), zap.Error(err))
	}
}
