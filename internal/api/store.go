package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soaringjerry/Oasis/internal/services"
)

// Session is one live controller. Callers hold mu while dispatching or
// reading views.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	ctrl     *services.Controller
	lastSeen time.Time
}

// Do runs fn with the session locked.
func (s *Session) Do(fn func(c *services.Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctrl)
}

type memoryStore struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	newController func() *services.Controller
	now           func() time.Time
}

func newMemoryStore(newController func() *services.Controller) *memoryStore {
	return &memoryStore{
		sessions:      map[string]*Session{},
		newController: newController,
		now:           time.Now,
	}
}

func (s *memoryStore) Create() *Session {
	now := s.now()
	sess := &Session{ID: uuid.NewString(), CreatedAt: now, ctrl: s.newController(), lastSeen: now}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session and marks it as seen.
func (s *memoryStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = s.now()
	}
	return sess, ok
}

func (s *memoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Sweep drops sessions not seen since cutoff and returns how many were removed.
func (s *memoryStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
