package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"healthscan/models"
)

var ErrSessionNotFound = errors.New("chat session not found")

// SessionStore keeps chat transcripts for the lifetime of a page view.
// Sessions expire ttl after their last write.
type SessionStore interface {
	Create(ctx context.Context, s *models.ChatSession) error
	Get(ctx context.Context, id string) (*models.ChatSession, error)
	Append(ctx context.Context, id string, msg models.ChatMessage) error
}

type memorySession struct {
	session   models.ChatSession
	expiresAt time.Time
}

type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memorySession
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memorySession),
	}
}

func (m *MemorySessionStore) Create(_ context.Context, s *models.ChatSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictExpired()
	cp := *s
	cp.Messages = append([]models.ChatMessage{}, s.Messages...)
	m.sessions[s.ID] = &memorySession{session: cp, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*models.ChatSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ms, ok := m.live(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := ms.session
	cp.Messages = append([]models.ChatMessage{}, ms.session.Messages...)
	return &cp, nil
}

func (m *MemorySessionStore) Append(_ context.Context, id string, msg models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ms, ok := m.live(id)
	if !ok {
		return ErrSessionNotFound
	}
	ms.session.Messages = append(ms.session.Messages, msg)
	ms.expiresAt = m.now().Add(m.ttl)
	return nil
}

// live must be called with mu held.
func (m *MemorySessionStore) live(id string) (*memorySession, bool) {
	ms, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && !m.now().Before(ms.expiresAt) {
		delete(m.sessions, id)
		return nil, false
	}
	return ms, true
}

func (m *MemorySessionStore) evictExpired() {
	if m.ttl <= 0 {
		return
	}
	now := m.now()
	for id, ms := range m.sessions {
		if !now.Before(ms.expiresAt) {
			delete(m.sessions, id)
		}
	}
}
