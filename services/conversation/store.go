// File: services/conversation/store.go
package conversation

import (
	"context"
	"sync"
	"time"

	"bookline/models"
	"bookline/utils"
)

// Store owns the mapping from contact id to session record. Implementations
// return copies; callers persist changes with Save. At most one session exists
// per contact — Reset overwrites, never duplicates.
type Store interface {
	// Get returns the session for a contact, or ok=false when absent.
	Get(ctx context.Context, contact string) (*models.Session, bool, error)
	// GetOrCreate returns the existing session or a fresh one at the main
	// menu; created reports which.
	GetOrCreate(ctx context.Context, contact string) (sess *models.Session, created bool, err error)
	// Save persists a mutated session.
	Save(ctx context.Context, sess *models.Session) error
	// Reset overwrites the contact's session with fresh defaults.
	Reset(ctx context.Context, contact string) (*models.Session, error)
	// Touch stamps the session with the current time.
	Touch(sess *models.Session)
	// Snapshot returns a copy of every live session.
	Snapshot(ctx context.Context) (map[string]models.Session, error)
}

// MemoryStore is the default single-process store: a plain map with TTL
// eviction so idle contacts do not accumulate forever.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	clock    utils.Clock
	ttl      time.Duration
}

// NewMemoryStore builds an in-memory store evicting sessions idle longer than
// ttl.
func NewMemoryStore(clock utils.Clock, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]models.Session),
		clock:    clock,
		ttl:      ttl,
	}
}

func (m *MemoryStore) Get(_ context.Context, contact string) (*models.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictStale()

	sess, ok := m.sessions[contact]
	if !ok {
		return nil, false, nil
	}
	copied := sess
	return &copied, true, nil
}

func (m *MemoryStore) GetOrCreate(_ context.Context, contact string) (*models.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictStale()

	if sess, ok := m.sessions[contact]; ok {
		copied := sess
		return &copied, false, nil
	}
	fresh := models.NewSession(contact, m.clock.Now())
	m.sessions[contact] = *fresh
	return fresh, true, nil
}

func (m *MemoryStore) Save(_ context.Context, sess *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.Contact] = *sess
	return nil
}

func (m *MemoryStore) Reset(_ context.Context, contact string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fresh := models.NewSession(contact, m.clock.Now())
	m.sessions[contact] = *fresh
	return fresh, nil
}

func (m *MemoryStore) Touch(sess *models.Session) {
	sess.LastInteractionAt = m.clock.Now()
}

func (m *MemoryStore) Snapshot(_ context.Context) (map[string]models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]models.Session, len(m.sessions))
	for contact, sess := range m.sessions {
		out[contact] = sess
	}
	return out, nil
}

// evictStale drops sessions idle beyond the TTL. Caller holds m.mu.
func (m *MemoryStore) evictStale() {
	cutoff := m.clock.Now().Add(-m.ttl)
	for contact, sess := range m.sessions {
		if sess.LastInteractionAt.Before(cutoff) {
			delete(m.sessions, contact)
		}
	}
}
