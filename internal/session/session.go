// Package session keeps live fields in memory, one per session id.
package session

import (
	"errors"
	"hash/maphash"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/memefield/internal/field"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu        sync.Mutex
	updatedAt time.Time
	field     *field.Field
	now       func() time.Time
}

// Do runs fn with exclusive access to the session's field.
func (s *Session) Do(fn func(f *field.Field) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updatedAt = s.now()
	return fn(s.field)
}

// View runs fn with the field locked, without touching the session.
func (s *Session) View(fn func(f *field.Field)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.field)
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	newRand  func() *rand.Rand
	now      func() time.Time
}

type Option func(*Store)

// WithRand replaces the per-field generator factory.
func WithRand(newRand func() *rand.Rand) Option {
	return func(s *Store) { s.newRand = newRand }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		newRand:  createRand,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create builds a new field with nMines mines and registers it. Every field
// gets its own freshly seeded generator.
func (st *Store) Create(nMines int) (*Session, error) {
	f, err := field.New(nMines, st.newRand())
	if err != nil {
		return nil, err
	}
	now := st.now()
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		updatedAt: now,
		field:     f,
		now:       st.now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s, nil
}

func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (st *Store) Delete(id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions untouched for longer than maxIdle and returns how many
// were removed.
func (st *Store) Sweep(maxIdle time.Duration) (removed int) {
	deadline := st.now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.UpdatedAt().Before(deadline) {
			delete(st.sessions, id)
			removed++
		}
	}
	return
}
