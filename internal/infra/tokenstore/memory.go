// Package tokenstore provides the authoritative store of live access tokens.
package tokenstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"kalado/internal/domain/repository"
)

// janitorInterval is how often expired entries are swept out.
const janitorInterval = time.Minute

type entry struct {
	subjectID int64
	expiresAt time.Time
}

// memoryStore is an in-process TokenStore. Alongside the token map it keeps
// a subject index so revoking all of a user's tokens is a map lookup, not a
// scan of every live token.
type memoryStore struct {
	mu        sync.RWMutex
	tokens    map[string]entry
	bySubject map[int64]map[string]struct{}

	logger *slog.Logger
	stop   chan struct{}
	once   sync.Once
}

// NewMemoryStore creates the store and starts its expiry janitor.
func NewMemoryStore(logger *slog.Logger) repository.TokenStore {
	store := &memoryStore{
		tokens:    make(map[string]entry),
		bySubject: make(map[int64]map[string]struct{}),
		logger:    logger,
		stop:      make(chan struct{}),
	}
	go store.janitor()

	return store
}

// Put records a live token for a subject with the given ttl.
func (s *memoryStore) Put(_ context.Context, token string, subjectID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = entry{subjectID: subjectID, expiresAt: time.Now().Add(ttl)}

	set, ok := s.bySubject[subjectID]
	if !ok {
		set = make(map[string]struct{})
		s.bySubject[subjectID] = set
	}
	set[token] = struct{}{}

	return nil
}

// Get returns the subject id a live token belongs to. Expired entries count
// as absent even before the janitor removes them.
func (s *memoryStore) Get(_ context.Context, token string) (int64, error) {
	s.mu.RLock()
	stored, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(stored.expiresAt) {
		return 0, repository.ErrTokenNotFound
	}

	return stored.subjectID, nil
}

// Delete revokes a single token. Deleting an absent token is not an error.
func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(token)

	return nil
}

// DeleteAllForSubject revokes every live token of a subject.
func (s *memoryStore) DeleteAllForSubject(_ context.Context, subjectID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.bySubject[subjectID]
	removed := len(set)
	for token := range set {
		delete(s.tokens, token)
	}
	delete(s.bySubject, subjectID)

	return removed, nil
}

// removeLocked deletes a token from both maps. Caller holds the write lock.
func (s *memoryStore) removeLocked(token string) {
	stored, ok := s.tokens[token]
	if !ok {
		return
	}

	delete(s.tokens, token)
	if set, ok := s.bySubject[stored.subjectID]; ok {
		delete(set, token)
		if len(set) == 0 {
			delete(s.bySubject, stored.subjectID)
		}
	}
}

// Close stops the janitor goroutine.
func (s *memoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

func (s *memoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *memoryStore) sweep() {
	now := time.Now()

	s.mu.Lock()
	swept := 0
	for token, stored := range s.tokens {
		if now.After(stored.expiresAt) {
			s.removeLocked(token)
			swept++
		}
	}
	s.mu.Unlock()

	if swept > 0 && s.logger != nil {
		s.logger.Debug("Swept expired tokens", slog.Int("count", swept))
	}
}
