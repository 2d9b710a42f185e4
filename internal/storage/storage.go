package storage

import (
	"strings"
	"sync"
	"time"
)

// Lookup is one successful article fetch recorded for the history view.
type Lookup struct {
	Term  string    `json:"term"`
	Title string    `json:"title"`
	When  time.Time `json:"when"`
}

// HistoryStore keeps the most recent lookups in memory, newest first,
// capped at a fixed size. Safe for concurrent use.
type HistoryStore struct {
	mu      sync.RWMutex
	max     int
	entries []Lookup
}

func New(max int) *HistoryStore {
	if max < 1 {
		max = 1
	}
	return &HistoryStore{max: max}
}

// Add records a lookup. A repeated term moves to the front instead of
// duplicating.
func (s *HistoryStore) Add(l Lookup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(l.Term)
	for i, existing := range s.entries {
		if strings.ToLower(existing.Term) == key {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}

	s.entries = append([]Lookup{l}, s.entries...)
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
}

// Recent returns a copy of the history, newest first.
func (s *HistoryStore) Recent() []Lookup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Lookup, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of recorded lookups.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
