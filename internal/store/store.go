// Package store implements the flat-file record collection every service
// persists to. A store owns one JSON file holding the full collection; every
// mutation rewrites the whole file. A per-store mutex serializes the
// load-mutate-persist cycle and writes go through a temp file plus rename so
// a crash never leaves a torn collection on disk.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Record is implemented by every persisted entity. Implementations use
// pointer receivers so the store can stamp the assigned id onto the record.
type Record interface {
	RecordID() int
	SetRecordID(id int)
}

// Store persists one collection of T to a single JSON file.
type Store[T Record] struct {
	path string
	mu   sync.Mutex
}

// New returns a store backed by the file at path. The file is created lazily
// on the first mutation; a missing file reads as an empty collection.
func New[T Record](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file location.
func (s *Store[T]) Path() string { return s.path }

// LoadAll returns every record in load order. A missing backing file is the
// first-use bootstrap case and yields an empty slice, not an error.
func (s *Store[T]) LoadAll() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// FindByID returns the record with the given id, or false when absent.
func (s *Store[T]) FindByID(id int) (T, bool, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load()
	if err != nil {
		return zero, false, err
	}
	for _, r := range recs {
		if r.RecordID() == id {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Append assigns the next id to rec, appends it to the collection and
// persists. The next id is the tail record's id plus one (1 when empty):
// records are only ever appended at the tail and deletion keeps relative
// order, so load order is creation order and the tail carries the maximum.
func (s *Store[T]) Append(rec T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load()
	if err != nil {
		return zero, err
	}
	id := 1
	if len(recs) > 0 {
		id = recs[len(recs)-1].RecordID() + 1
	}
	rec.SetRecordID(id)
	recs = append(recs, rec)
	if err := s.persist(recs); err != nil {
		return zero, err
	}
	return rec, nil
}

// UpdateByID replaces the fields of the record with the given id by rec,
// keeping the id, and persists. Returns false when no record matches.
func (s *Store[T]) UpdateByID(id int, rec T) (T, bool, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load()
	if err != nil {
		return zero, false, err
	}
	for i, r := range recs {
		if r.RecordID() == id {
			rec.SetRecordID(id)
			recs[i] = rec
			if err := s.persist(recs); err != nil {
				return zero, false, err
			}
			return rec, true, nil
		}
	}
	return zero, false, nil
}

// DeleteByID filters the record with the given id out of the collection and
// persists. Returns whether a removal occurred; deleting an absent id does
// not touch the file.
func (s *Store[T]) DeleteByID(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.load()
	if err != nil {
		return false, err
	}
	kept := recs[:0]
	found := false
	for _, r := range recs {
		if r.RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return false, nil
	}
	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

// load reads the full collection. Callers must hold s.mu.
func (s *Store[T]) load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return recs, nil
}

// persist writes the full collection through a temp file in the same
// directory and renames it into place. Callers must hold s.mu.
func (s *Store[T]) persist(recs []T) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", s.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", tmp.Name(), err)
	}
	return nil
}
