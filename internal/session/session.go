// Package session holds generated study sets in memory so a browser
// session can score its quiz and download PDFs after generation. Nothing
// is persisted; entries expire after a TTL.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"studygen/internal/quiz"
)

// StudySet is one generated notes-plus-quiz bundle.
type StudySet struct {
	ID          uuid.UUID       `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Topic       string          `json:"topic"`
	KeyConcepts string          `json:"key_concepts"`
	StudyNotes  string          `json:"study_notes"`
	Questions   []quiz.Question `json:"questions"`
}

type entry struct {
	set     StudySet
	expires time.Time
}

// Store is a mutex-guarded in-memory map of study sets with TTL eviction.
// Each entry is owned by its run; concurrent runs never share state.
type Store struct {
	mu   sync.RWMutex
	ttl  time.Duration
	sets map[uuid.UUID]entry
	now  func() time.Time
}

// NewStore creates a store whose entries live for ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:  ttl,
		sets: make(map[uuid.UUID]entry),
		now:  time.Now,
	}
}

// Put stores a study set under its ID, resetting its TTL.
func (s *Store) Put(set StudySet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[set.ID] = entry{set: set, expires: s.now().Add(s.ttl)}
}

// Get returns the study set for id, if present and not expired.
func (s *Store) Get(id uuid.UUID) (StudySet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sets[id]
	if !ok || s.now().After(e.expires) {
		return StudySet{}, false
	}
	return e.set, true
}

// Sweep removes expired entries and returns how many were evicted.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	evicted := 0
	for id, e := range s.sets {
		if now.After(e.expires) {
			delete(s.sets, id)
			evicted++
		}
	}
	return evicted
}

// Len reports how many entries are currently held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sets)
}

// Janitor sweeps on the given interval until ctx is cancelled.
func (s *Store) Janitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep()
		}
	}
}
