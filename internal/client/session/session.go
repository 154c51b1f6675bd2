// Package session holds the client's session context: the opaque access
// token with an explicit Load / Save / Clear lifecycle. Components that need
// the token receive a *Session instead of reaching for ambient storage.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/authshell/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authshell/internal/common"
)

var ErrEmptyToken = errors.New("empty access token")

// Session caches the token held in the backing store. The token is never
// parsed; it is kept and handed out exactly as received.
type Session struct {
	repo metadata.Repository

	mu     sync.RWMutex
	token  string
	loaded bool
}

func New(repo metadata.Repository) *Session {
	return &Session{repo: repo}
}

// Load reads the token from the store and refreshes the cache. It returns
// "" when no token is stored.
func (s *Session) Load(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = string(v)
	s.loaded = true
	return s.token, nil
}

// Save persists token, replacing any previous one.
func (s *Session) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.repo.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.loaded = true
	return nil
}

// Clear removes the stored token.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.AccessTokenKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.loaded = true
	return nil
}

// Token returns the cached token, loading it first if the session has not
// touched the store yet.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.token, nil
	}
	s.mu.RUnlock()
	return s.Load(ctx)
}
