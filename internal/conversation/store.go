package conversation

import "sync"

// Store is an append-only conversation history.
//
// The first entry is the system directive given to NewStore and is never
// removed. Each Append and Snapshot is atomic on its own; callers that
// append, call the model, and append again are not serialized against each
// other, so concurrent turns may interleave.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore creates a history seeded with a single system entry.
func NewStore(systemPrompt string) *Store {
	return &Store{
		entries: []Entry{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// Append adds e to the end of the history.
func (s *Store) Append(e Entry) {
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
}

// Snapshot returns a copy of the full ordered history.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries, system entry included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
