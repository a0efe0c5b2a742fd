package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aoneretail/footwear-pos/pkg/apperror"
)

// Store holds per-screen state keyed by session ID. It replaces the
// original page-level globals: a session is created when a screen opens,
// mutated one user event at a time, and reaped after its TTL when the
// browser navigates away without closing it.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry[T]

	ttl         time.Duration
	cleanupTick time.Duration
	log         *zap.Logger
}

type entry[T any] struct {
	// Per-session lock: events on one screen run to completion before the
	// next is handled, matching the single-threaded event model.
	mu       sync.Mutex
	value    *T
	lastSeen time.Time
}

// NewStore creates a session store and starts its background reaper.
func NewStore[T any](ttl, cleanupInterval time.Duration, log *zap.Logger) *Store[T] {
	s := &Store[T]{
		entries:     make(map[uuid.UUID]*entry[T]),
		ttl:         ttl,
		cleanupTick: cleanupInterval,
		log:         log,
	}
	go s.cleanupLoop()
	return s
}

// Create registers a new session around the given state and returns its ID.
func (s *Store[T]) Create(value *T) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.entries[id] = &entry[T]{value: value, lastSeen: time.Now()}
	s.mu.Unlock()
	return id
}

// With runs fn against the session's state while holding its lock, so each
// user event mutates the session to completion before the next one runs.
func (s *Store[T]) With(id uuid.UUID, fn func(*T) error) error {
	s.mu.RLock()
	e, exists := s.entries[id]
	s.mu.RUnlock()
	if !exists {
		return apperror.NewNotFoundError("Session")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = time.Now()
	return fn(e.value)
}

// Delete discards a session, typically on explicit screen close or after a
// successful submission.
func (s *Store[T]) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// cleanupLoop periodically removes sessions idle past their TTL.
func (s *Store[T]) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		s.cleanup()
	}
}

func (s *Store[T]) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	if removed > 0 {
		s.log.Info("reaped idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", len(s.entries)),
		)
	}
}
