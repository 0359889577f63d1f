package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// MockStorage is an in-memory Storage used by tests and the "memory" backend.
type MockStorage struct {
	mu        sync.RWMutex
	games     map[uuid.UUID]*SavedGame
	pingError error
	saveError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates an empty mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		games: make(map[uuid.UUID]*SavedGame),
	}
}

// SetPingSuccess configures the mock to succeed on ping
func (m *MockStorage) SetPingSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = nil
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError makes every following SaveGame fail with err. Pass nil to clear.
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

// SaveGame stores a copy of game so later caller mutations do not leak in.
func (m *MockStorage) SaveGame(ctx context.Context, game *SavedGame) error {
	if game == nil {
		return errors.New("saved game cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.games[game.ID] = cloneGame(game)
	return nil
}

func (m *MockStorage) LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, nil
	}
	return cloneGame(g), nil
}

func (m *MockStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

// Count reports how many games are stored.
func (m *MockStorage) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func cloneGame(g *SavedGame) *SavedGame {
	c := *g
	c.State = append([]byte(nil), g.State...)
	return &c
}
