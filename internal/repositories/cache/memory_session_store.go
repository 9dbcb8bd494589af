package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/gcash_pos_backend/internal/core/ports/repositories"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

type memoryLock struct {
	token     string
	expiresAt time.Time
}

// MemorySessionStore is the single-process fallback used when Redis is not
// configured. Sessions are stored encoded, so callers never share a Cart.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memoryEntry
	locks    map[string]memoryLock
}

// NewMemorySessionStore creates an in-process session store.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memoryEntry),
		locks:    make(map[string]memoryLock),
	}
}

var _ portsrepo.SessionStore = (*MemorySessionStore)(nil)

func (s *MemorySessionStore) GetSession(_ context.Context, sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	if ok && !s.now().Before(entry.expiresAt) {
		delete(s.sessions, sessionID)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: session %s", apperrors.ErrNotFound, sessionID)
	}
	return decodeSession(entry.raw)
}

func (s *MemorySessionStore) SaveSession(_ context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.SessionID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.SessionID] = memoryEntry{raw: raw, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.locks, sessionID)
	return nil
}

func (s *MemorySessionStore) AcquireSessionLock(_ context.Context, sessionID, token string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if held, ok := s.locks[sessionID]; ok && now.Before(held.expiresAt) {
		return false, nil
	}
	s.locks[sessionID] = memoryLock{token: token, expiresAt: now.Add(ttl)}
	return true, nil
}

func (s *MemorySessionStore) ReleaseSessionLock(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if held, ok := s.locks[sessionID]; ok && held.token == token {
		delete(s.locks, sessionID)
	}
	return nil
}
