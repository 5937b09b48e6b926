// internal/store/memory.go
//
// In-memory store for active hangman rounds. Finished rounds are recorded
// in SQLite by the HTTP layer; in-flight round state is deliberately
// ephemeral and lost on restart.
//
// Characteristics:
//   - Rounds keyed by crypto-random ID in a map.
//   - Concurrency-safe via RWMutex (gameplay on each round is
//     single-owner; the store mutex only guards the map, and each round
//     carries its own lock for the end-of-round reveal).
//   - ErrNotFound for missing IDs on Get().

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/joshuaxchen/Evil-Hangman/internal/hangman"
)

// ErrNotFound is returned by Get for unknown round IDs.
var ErrNotFound = errors.New("store: round not found")

// Round is one player's active session: a prepped manager plus the
// identity bookkeeping the HTTP layer needs.
type Round struct {
	ID      string
	Manager *hangman.Manager
	OwnerID string // user ID or anonymous cookie ID
	Started time.Time

	mu       sync.Mutex
	revealed string // secret word, pinned on first Reveal
}

// Reveal returns the round's secret word, resolving it from the manager on
// the first call and pinning it so every later read sees the same word.
// Safe to call from concurrent readers of a finished round.
func (r *Round) Reveal() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.revealed == "" {
		w, err := r.Manager.SecretWord()
		if err != nil {
			return "", err
		}
		r.revealed = w
	}
	return r.revealed, nil
}

// NewRound wraps a prepped manager in a session with a fresh ID.
func NewRound(m *hangman.Manager, ownerID string) *Round {
	return &Round{
		ID:      randomID(),
		Manager: m,
		OwnerID: ownerID,
		Started: time.Now().UTC(),
	}
}

// Store is the persistence interface for active rounds.
type Store interface {
	// Save persists or updates a round.
	Save(ctx context.Context, r *Round) error

	// Get retrieves a round by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Round, error)
}

type memory struct {
	mu     sync.RWMutex
	rounds map[string]*Round
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*Round)}
}

func (m *memory) Save(ctx context.Context, r *Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
