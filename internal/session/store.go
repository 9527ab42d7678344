// Package session holds the per-conversation reference store. The expansion
// engine never mutates a store; it returns a Delta the caller applies, so
// serializing merges per session is the caller's one job.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/snipmux/snipmux/internal/models"
)

// Delta is the set of new or updated references produced by one expansion
// call
type Delta map[string]models.Reference

// Store maps snippet name to its session-scoped reference. One store belongs
// to one session; concurrent calls for the same session must be serialized
// by the caller.
type Store struct {
	Refs map[string]models.Reference `json:"refs"`
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{Refs: make(map[string]models.Reference)}
}

// Get returns the reference for a snippet name, if any
func (s *Store) Get(name string) (models.Reference, bool) {
	ref, ok := s.Refs[name]
	return ref, ok
}

// Apply merges a delta into the store. Within a session a name keeps its id
// for its whole lifetime, so an existing id is never replaced.
func (s *Store) Apply(d Delta) {
	for name, ref := range d {
		if prev, ok := s.Refs[name]; ok {
			ref.ID = prev.ID
		}
		s.Refs[name] = ref
	}
}

// Names returns the referenced snippet names, sorted
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Refs))
	for name := range s.Refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// storePath returns the JSON file backing a session id
func storePath(dir, id string) string {
	return filepath.Join(dir, id+".json")
}

// Load reads a session store from disk. A missing file yields an empty
// store.
func Load(dir, id string) (*Store, error) {
	data, err := os.ReadFile(storePath(dir, id))
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	store := NewStore()
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", id, err)
	}
	if store.Refs == nil {
		store.Refs = make(map[string]models.Reference)
	}
	return store, nil
}

// Save writes the store to disk, creating the session directory if needed
func (s *Store) Save(dir, id string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", id, err)
	}

	if err := os.WriteFile(storePath(dir, id), data, 0644); err != nil {
		return fmt.Errorf("failed to write session %s: %w", id, err)
	}
	return nil
}

// Reset deletes a session's persisted state. Resetting a session that was
// never saved is not an error.
func Reset(dir, id string) error {
	err := os.Remove(storePath(dir, id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to reset session %s: %w", id, err)
	}
	return nil
}
