package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/google/uuid"
)

// Session is the state of one in-flight OAuth login.
type Session struct {
	ID string

	// State is the anti-forgery value echoed back by the provider.
	State string

	// UserRef is the identity reference stored once the callback resolved
	// the provider profile.
	UserRef string

	ExpiresAt time.Time
}

// Store keeps sessions between the provider redirect and the callback.
type Store interface {
	// Create starts a session with a fresh random id and state.
	Create(ctx context.Context) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every session expired at now and returns how
	// many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewMemoryStore returns an in-process Store whose sessions live for ttl.
func NewMemoryStore(ttl time.Duration, logger *logger.Logger) Store {
	return &memoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

func (m *memoryStore) Create(ctx context.Context) (Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return Session{}, err
	}
	state, err := uuid.NewRandom()
	if err != nil {
		return Session{}, err
	}

	s := Session{
		ID:        id.String(),
		State:     state.String(),
		ExpiresAt: m.now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if !m.now().Before(s.ExpiresAt) {
		delete(m.sessions, id)
		return Session{}, ErrSessionExpired
	}

	return s, nil
}

// Save overwrites an existing session. The expiry is not extended.
func (m *memoryStore) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.sessions[s.ID]
	if !ok {
		return ErrSessionNotFound
	}
	s.ExpiresAt = current.ExpiresAt
	m.sessions[s.ID] = s

	return nil
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		logger.FromContext(ctx).Debug().Int("removed", removed).Int("active", len(m.sessions)).Msg("expired sessions purged")
	}

	return removed, nil
}
