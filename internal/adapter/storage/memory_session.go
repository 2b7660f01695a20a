package storage

import (
	"context"
	"sync"

	"github.com/rl1809/bookstore/internal/core/domain"
)

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.Session)}
}

func (s *MemorySessionStore) Save(ctx context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.Identity != nil {
		identity := *session.Identity
		session.Identity = &identity
	}
	s.sessions[session.Token] = session
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if session.Identity != nil {
		identity := *session.Identity
		session.Identity = &identity
	}
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
