package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrEmptyToken = errors.New("empty token")

// Session is the in-memory projection of one role's tokens, one per browser. Mutations go
// through the credential store first, so memory never holds a token the store has not
// accepted. Only browsers holding a token are kept in memory.
type Session struct {
	role  Role
	store CredentialStore

	mu     sync.Mutex
	tokens map[BrowserID]Token
}

func NewSession(role Role, store CredentialStore) (*Session, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("session: unknown role %q", role)
	}

	return &Session{
		role:   role,
		store:  store,
		tokens: make(map[BrowserID]Token),
	}, nil
}

func (s *Session) Role() Role {
	return s.role
}

// Current returns the token of the context's browser. A browser not seen since start is
// restored from the store, so a restart keeps the session.
func (s *Session) Current(ctx context.Context) (Token, bool, error) {
	browser, _ := BrowserFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.tokens[browser]; ok {
		return token, true, nil
	}

	token, ok, err := s.store.Get(ctx, s.role.TokenKey())
	if err != nil {
		return "", false, fmt.Errorf("restore %s session: %w", s.role, err)
	}
	if !ok || token == "" {
		return "", false, nil
	}

	s.tokens[browser] = token
	return token, true, nil
}

// Login replaces the role's token of the context's browser.
func (s *Session) Login(ctx context.Context, token Token) error {
	if token == "" {
		return ErrEmptyToken
	}

	browser, _ := BrowserFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Set(ctx, s.role.TokenKey(), token)
	if err != nil {
		return fmt.Errorf("store %s token: %w", s.role, err)
	}

	s.tokens[browser] = token
	return nil
}

// Logout is safe to call when already logged out.
func (s *Session) Logout(ctx context.Context) error {
	browser, _ := BrowserFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Remove(ctx, s.role.TokenKey())
	if err != nil {
		return fmt.Errorf("remove %s token: %w", s.role, err)
	}

	delete(s.tokens, browser)
	return nil
}

func (s *Session) reset(ctx context.Context) {
	browser, _ := BrowserFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, browser)
}

// SignOutAll removes the tokens of every role and resets the sessions of the context's
// browser. A failed removal does not stop the others; all failures are returned joined.
func SignOutAll(ctx context.Context, store CredentialStore, sessions ...*Session) error {
	var errs []error
	for _, role := range Roles {
		err := store.Remove(ctx, role.TokenKey())
		if err != nil {
			errs = append(errs, fmt.Errorf("remove %s token: %w", role, err))
		}
	}

	for _, session := range sessions {
		session.reset(ctx)
	}

	return errors.Join(errs...)
}
