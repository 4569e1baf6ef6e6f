package memory

import (
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/PabloGalante/bright-road/internal/domain"
)

// SessionStore keeps UI sessions in a go-cache with a sliding idle TTL.
// Every UpdateSession pushes the expiry forward; untouched sessions are
// evicted by the janitor and reported through OnEvict.
type SessionStore struct {
	items *cache.Cache
}

// NewSessionStore creates a store whose entries expire after ttl of
// inactivity. A ttl <= 0 disables expiry.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		return &SessionStore{items: cache.New(cache.NoExpiration, 0)}
	}
	return &SessionStore{items: cache.New(ttl, janitorInterval(ttl))}
}

func janitorInterval(ttl time.Duration) time.Duration {
	if ttl < 2*time.Minute {
		return ttl / 2
	}
	return time.Minute
}

// OnEvict registers fn to run whenever a session leaves the store, either
// by expiry or by DeleteSession. fn runs outside the store's lock.
func (s *SessionStore) OnEvict(fn func(id domain.SessionID)) {
	s.items.OnEvicted(func(key string, _ interface{}) {
		fn(domain.SessionID(key))
	})
}

func (s *SessionStore) CreateSession(session *domain.Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	cp := *session
	if err := s.items.Add(string(session.ID), &cp, cache.DefaultExpiration); err != nil {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	return nil
}

// UpdateSession replaces the stored session and refreshes its expiry.
func (s *SessionStore) UpdateSession(session *domain.Session) error {
	if session == nil {
		return errors.New("session is nil")
	}
	cp := *session
	if err := s.items.Replace(string(session.ID), &cp, cache.DefaultExpiration); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, session.ID)
	}
	return nil
}

func (s *SessionStore) GetSession(id domain.SessionID) (*domain.Session, error) {
	v, ok := s.items.Get(string(id))
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	cp := *v.(*domain.Session)
	return &cp, nil
}

func (s *SessionStore) DeleteSession(id domain.SessionID) error {
	if _, ok := s.items.Get(string(id)); !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s.items.Delete(string(id))
	return nil
}

// Count reports live (non-expired) sessions.
func (s *SessionStore) Count() int {
	return s.items.ItemCount()
}
