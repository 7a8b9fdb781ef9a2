//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CredentialStore=CredentialStore"
package auth

import (
	"context"
	"sync"
)

// CredentialStore is a durable string-keyed token storage. It does not look at token expiry.
type CredentialStore interface {
	Get(ctx context.Context, key Key) (Token, bool, error)
	Set(ctx context.Context, key Key, token Token) error
	// Remove succeeds when the key is absent.
	Remove(ctx context.Context, key Key) error
}

type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[Key]Token
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[Key]Token)}
}

func (s *MemoryStore) Get(_ context.Context, key Key) (Token, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[key]
	return token, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key Key, token Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[key] = token
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, key)
	return nil
}
