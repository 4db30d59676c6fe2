package session

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
)

type (
	// AuthGateway is the slice of the auth backend the store needs.
	AuthGateway interface {
		// Login exchanges credentials for an access token.
		Login(ctx context.Context, email, password string) (string, error)
		// Register creates an account; a separate login is required afterwards.
		Register(ctx context.Context, email, password, role string) error
	}

	// TokenStorage is the single-key durable storage backing the session.
	TokenStorage interface {
		Read() (string, error) // "" when absent
		Write(token string) error
		Clear() error
	}

	// Store is the single source of truth for "am I logged in, and as whom".
	// One process owns one Store; every token change is mirrored to durable
	// storage so a later Initialize in a new process reproduces the session.
	Store struct {
		auth    AuthGateway
		storage TokenStorage
		log     core.Logger

		mu    sync.RWMutex
		token string
		user  *Identity
	}
)

// AuthError is a login/register rejection meant for user-visible messaging.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string { return e.Reason }
func (e *AuthError) Unwrap() error { return e.Err }

func NewStore(auth AuthGateway, storage TokenStorage, log core.Logger) *Store {
	return &Store{auth: auth, storage: storage, log: log}
}

// Initialize reads the persisted token. If one exists the session becomes
// authenticated with the placeholder identity; no backend is contacted.
func (s *Store) Initialize() error {
	tok, err := s.storage.Read()
	if err != nil {
		return errors.Wrap(err, "reading persisted token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	if tok != "" {
		s.user = &Identity{}
	}
	return nil
}

// Login authenticates against the auth backend. On success the access token
// is persisted and the session becomes authenticated; on failure session
// state is left untouched and an *AuthError is returned.
func (s *Store) Login(ctx context.Context, email, password string) error {
	email = core.CleanString(email, true /* lower */)
	tok, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return &AuthError{Reason: "authentication failed", Err: err}
	}
	if err := s.storage.Write(tok); err != nil {
		// credentials were fine; keep the message truthful
		return &AuthError{Reason: "could not persist session", Err: errors.Wrap(err, "persisting token")}
	}
	s.mu.Lock()
	s.token = tok
	s.user = &Identity{}
	s.mu.Unlock()
	return nil
}

// Register creates an account with the requested role. Session state is not
// mutated; the platform requires a separate login after registration.
func (s *Store) Register(ctx context.Context, email, password, role string) error {
	creds := Credentials{
		Email:    core.CleanString(email, true /* lower */),
		Password: password,
		Role:     core.CleanString(role, true),
	}
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := s.auth.Register(ctx, creds.Email, creds.Password, creds.Role); err != nil {
		return &AuthError{Reason: "registration failed", Err: err}
	}
	return nil
}

// Logout clears durable storage and in-memory state unconditionally.
func (s *Store) Logout() {
	if err := s.storage.Clear(); err != nil && s.log != nil {
		s.log.Warn("clearing persisted token", err)
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
}

// Authenticated reports whether a user identity is present. Route guards
// must call this on every evaluation; the result is never cached.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserID returns the id views should act as. The identity placeholder
// carries no real id, so authenticated sessions fall back to the fixture
// user until token decoding is in scope.
func (s *Store) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return 0
	}
	return placeholderUserID
}
