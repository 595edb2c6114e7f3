package catalog

import (
	"iter"

	"github.com/ytget/book-tracker/internal/model"
)

// Store is an ordered, in-memory collection of entries. Insertion order is
// display order. Store is a value: every mutating method returns a new Store
// and leaves the receiver untouched, so a screen can detect changes by
// comparing snapshots.
type Store struct {
	entries []model.Entry
}

// NewStore returns an empty store
func NewStore() Store {
	return Store{}
}

// Append returns a new store with entry added at the end
func (s Store) Append(entry model.Entry) Store {
	next := make([]model.Entry, len(s.entries), len(s.entries)+1)
	copy(next, s.entries)
	return Store{entries: append(next, entry)}
}

// All returns a copy of the entries in insertion order
func (s Store) All() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entries iterates over the entries in insertion order. The sequence can be
// ranged over any number of times.
func (s Store) Entries() iter.Seq[model.Entry] {
	return func(yield func(model.Entry) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of entries
func (s Store) Len() int {
	return len(s.entries)
}

// At returns the entry at position i
func (s Store) At(i int) (model.Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return model.Entry{}, false
	}
	return s.entries[i], true
}

// Get returns the entry with the given ID
func (s Store) Get(id string) (model.Entry, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.entries[i], true
	}
	return model.Entry{}, false
}

// RemoveByID returns a new store without the entry with the given ID. The
// second value is false, and the receiver is returned, when no entry matches.
func (s Store) RemoveByID(id string) (Store, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}
	next := make([]model.Entry, 0, len(s.entries)-1)
	next = append(next, s.entries[:i]...)
	next = append(next, s.entries[i+1:]...)
	return Store{entries: next}, true
}

// UpdateByID returns a new store where the entry with the given ID is replaced
// by fn's result. ID, Kind and CreatedAt of the original entry are preserved.
func (s Store) UpdateByID(id string, fn func(model.Entry) model.Entry) (Store, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return s, false
	}
	original := s.entries[i]
	updated := fn(original)
	updated.ID = original.ID
	updated.Kind = original.Kind
	updated.CreatedAt = original.CreatedAt

	next := s.All()
	next[i] = updated
	return Store{entries: next}, true
}

func (s Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
