package session

import (
	"context"
	"sync"

	"github.com/example/shop-console/internal/model"
)

// Session is a point-in-time snapshot of the authenticated actor. Token
// presence is authoritative for authentication; User is best-effort
// enrichment and may be nil while the profile is still loading.
type Session struct {
	Token string
	User  *model.User
}

// Authenticated reports whether a credential is held. A nil User does not
// mean logged-out.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// HasAnyRole applies the dual-shape role check to the session's user.
// Sessions without a loaded profile fail closed.
func (s Session) HasAnyRole(ids ...int64) bool {
	return s.User.HasAnyRole(ids...)
}

// AuthAPI is the slice of the remote API the login flow needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context) (*model.User, error)
}

// Store holds the process-wide session. It has exactly one writer path
// (LogIn, SetCredentials, Clear); everything else reads snapshots.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *model.User
	slot  TokenStore
}

// NewStore creates an empty session store backed by the given token slot.
func NewStore(slot TokenStore) *Store {
	return &Store{slot: slot}
}

// Rehydrate loads a previously persisted token into the session. The user
// profile is not restored; the session is "authenticated, profile loading".
func (s *Store) Rehydrate() error {
	token, err := s.slot.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()
	return nil
}

// LogIn exchanges credentials for a token, persists it, and enriches the
// session with the user profile. Any failure clears the persisted slot so a
// half-authenticated state never survives a restart.
func (s *Store) LogIn(ctx context.Context, api AuthAPI, email, password string) error {
	token, err := api.Login(ctx, email, password)
	if err != nil {
		_ = s.slot.Clear()
		return err
	}

	// The profile fetch needs the bearer attached, so the token is
	// committed before it.
	if err := s.slot.Save(token); err != nil {
		return err
	}
	s.SetCredentials(token, nil)

	user, err := api.Profile(ctx)
	if err != nil {
		_ = s.slot.Clear()
		s.Clear()
		return err
	}
	s.SetCredentials(token, user)
	return nil
}

// LogOut clears the session and the persisted token.
func (s *Store) LogOut() error {
	s.Clear()
	return s.slot.Clear()
}

// SetCredentials replaces the session contents.
func (s *Store) SetCredentials(token string, user *model.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
}

// Clear empties the in-memory session.
func (s *Store) Clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// Current returns a snapshot of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{Token: s.token, User: s.user}
}

// Token returns the held bearer token, empty when unauthenticated. This
// satisfies the API client's token source.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
