package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klwxsrx/adoption-portal/internal/auth"
)

const fileMode = 0o600

// Store keeps tokens in a JSON object on disk. Every write replaces the file atomically,
// so a crash leaves either the old or the new content.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return nil, fmt.Errorf("create credential store dir: %w", err)
	}

	return &Store{path: path}, nil
}

func (s *Store) Get(_ context.Context, key auth.Key) (auth.Token, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return "", false, err
	}

	token, ok := tokens[key]
	return token, ok, nil
}

func (s *Store) Set(_ context.Context, key auth.Key, token auth.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return err
	}

	tokens[key] = token
	return s.write(tokens)
}

func (s *Store) Remove(_ context.Context, key auth.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := tokens[key]; !ok {
		return nil
	}

	delete(tokens, key)
	return s.write(tokens)
}

func (s *Store) read() (map[auth.Key]auth.Token, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[auth.Key]auth.Token), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	tokens := make(map[auth.Key]auth.Token)
	if len(content) == 0 {
		return tokens, nil
	}

	err = json.Unmarshal(content, &tokens)
	if err != nil {
		return nil, fmt.Errorf("decode credential file %s: %w", s.path, err)
	}

	return tokens, nil
}

func (s *Store) write(tokens map[auth.Key]auth.Token) error {
	content, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp credential file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	_, err = tmp.Write(content)
	if err == nil {
		err = tmp.Chmod(fileMode)
	}
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write temp credential file: %w", err)
	}

	err = os.Rename(tmp.Name(), s.path)
	if err != nil {
		return fmt.Errorf("replace credential file: %w", err)
	}

	return nil
}
