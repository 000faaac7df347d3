package dal

import (
	"context"
	"sync"
	"time"

	"github.com/Danduartem/cafe-com-vendas-v2-sub003/checkout/domain"
)

// SessionStore is the in-memory session registry. Checkout state is
// intentionally ephemeral: nothing survives a restart except what the
// redirect URL already carries.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.CheckoutSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.CheckoutSession),
	}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return ErrSessionAlreadyExists
	}

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	s.sessions[session.ID] = session

	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return clone(session), nil
}

// clone copies the session including its pointer fields, so mutating a
// returned session never reaches the stored one outside the registry lock.
func clone(session *domain.CheckoutSession) *domain.CheckoutSession {
	c := *session

	if session.Lead != nil {
		lead := *session.Lead
		c.Lead = &lead
	}

	if session.Authorization != nil {
		authorization := *session.Authorization
		c.Authorization = &authorization
	}

	if session.Voucher != nil {
		voucher := *session.Voucher
		c.Voucher = &voucher
	}

	return &c
}

// Update applies fn to the stored session while the registry lock is held.
// The returned session is a copy taken after the mutation.
func (s *SessionStore) Update(ctx context.Context, sessionID string, fn UpdateFunc) (*domain.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now()

	return clone(session), nil
}

// DeleteIf removes the session when fn accepts it. fn runs while the
// registry lock is held, so the decision and the removal are atomic with
// respect to concurrent updates.
func (s *SessionStore) DeleteIf(ctx context.Context, sessionID string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	if err := fn(session); err != nil {
		return err
	}

	delete(s.sessions, sessionID)

	return nil
}

func (s *SessionStore) FindByAuthorization(ctx context.Context, authorizationID string) (*domain.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, session := range s.sessions {
		if session.Authorization != nil && session.Authorization.AuthorizationID == authorizationID {
			return clone(session), nil
		}
	}

	return nil, ErrSessionNotFound
}

// Sweep evicts abandoned sessions last touched before olderThan. Sessions
// with a pending redirect are never evicted.
func (s *SessionStore) Sweep(ctx context.Context, olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0

	for id, session := range s.sessions {
		if session.PendingRedirect {
			continue
		}

		if session.UpdatedAt.Before(olderThan) {
			delete(s.sessions, id)
			evicted++
		}
	}

	return evicted
}
