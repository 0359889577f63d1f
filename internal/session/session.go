// Package session connects the command engine to persistent storage. Every
// call loads the game, applies one operation and saves it back, so a game
// can be resumed from any process sharing the storage backend.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// ErrGameNotFound is returned when no saved game exists under an ID.
var ErrGameNotFound = errors.New("game not found")

// Snapshot is what a front end needs to draw the player's situation.
type Snapshot struct {
	ID          uuid.UUID
	Location    string
	Description string
	Objects     []string
	Exits       []string
	Inventory   []string
	Score       int
	MaxScore    int
	Turns       int
	Deaths      int
	IsFinished  bool
}

// Result is the outcome of one processed command.
type Result struct {
	Text     string
	Snapshot Snapshot
}

type Manager struct {
	engine  *engine.Engine
	storage storage.Storage
	logger  *slog.Logger
	now     func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewManager(e *engine.Engine, s storage.Storage, logger *slog.Logger) *Manager {
	return &Manager{
		engine:  e,
		storage: s,
		logger:  logger,
		now:     time.Now,
		locks:   make(map[uuid.UUID]*sync.Mutex),
	}
}

// lock serializes operations on one game.
func (m *Manager) lock(id uuid.UUID) func() {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Start creates and saves a new game and returns its welcome text.
func (m *Manager) Start(ctx context.Context) (*Result, error) {
	gs := m.engine.NewGame()
	return m.begin(ctx, gs)
}

// LoadOrCreate resumes the game under id, or starts a new game with that ID
// when none is saved. A nil id always starts a new game.
func (m *Manager) LoadOrCreate(ctx context.Context, id uuid.UUID) (res *Result, created bool, err error) {
	if id == uuid.Nil {
		res, err = m.Start(ctx)
		return res, true, err
	}

	unlock := m.lock(id)
	defer unlock()

	saved, gs, err := m.load(ctx, id)
	switch {
	case errors.Is(err, ErrGameNotFound):
		gs = m.engine.NewGame()
		gs.ID = id
		res, err = m.begin(ctx, gs)
		return res, true, err
	case err != nil:
		return nil, false, err
	}

	m.logger.Debug("Resumed game", "game_id", id, "turns", saved.Turns)
	return &Result{
		Text:     m.engine.RoomDescription(gs),
		Snapshot: m.snapshot(gs),
	}, false, nil
}

func (m *Manager) begin(ctx context.Context, gs *state.GameState) (*Result, error) {
	text := m.engine.Intro(gs)
	now := m.now()
	if err := m.save(ctx, gs, now, now); err != nil {
		return nil, err
	}
	m.logger.Info("Started game", "game_id", gs.ID)
	return &Result{Text: text, Snapshot: m.snapshot(gs)}, nil
}

// Process runs one command against the saved game and persists the result.
func (m *Manager) Process(ctx context.Context, id uuid.UUID, input string) (*Result, error) {
	unlock := m.lock(id)
	defer unlock()

	saved, gs, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	text := m.engine.HandleCommand(gs, input)
	if err := m.save(ctx, gs, saved.StartedAt, m.now()); err != nil {
		return nil, err
	}
	if gs.IsFinished && !saved.IsFinished {
		m.logger.Info("Game finished", "game_id", id, "turns", gs.Turns, "score", m.engine.Score(gs))
	}

	return &Result{Text: text, Snapshot: m.snapshot(gs)}, nil
}

// Reset replaces the saved game with a fresh one under the same ID.
func (m *Manager) Reset(ctx context.Context, id uuid.UUID) (*Result, error) {
	unlock := m.lock(id)
	defer unlock()

	gs := m.engine.NewGame()
	gs.ID = id
	m.logger.Debug("Resetting game", "game_id", id)
	return m.begin(ctx, gs)
}

// Snapshot returns the current view of a saved game without taking a turn.
func (m *Manager) Snapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	unlock := m.lock(id)
	defer unlock()

	_, gs, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := m.snapshot(gs)
	return &snap, nil
}

// Delete removes a saved game.
func (m *Manager) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := m.lock(id)
	defer unlock()

	if err := m.storage.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}

	m.mu.Lock()
	delete(m.locks, id)
	m.mu.Unlock()
	return nil
}

func (m *Manager) load(ctx context.Context, id uuid.UUID) (*storage.SavedGame, *state.GameState, error) {
	saved, err := m.storage.LoadGame(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load game %s: %w", id, err)
	}
	if saved == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	gs, err := state.Unmarshal(saved.State)
	if err != nil {
		m.logger.Error("Saved game is corrupt", "game_id", id, "error", err)
		return nil, nil, fmt.Errorf("failed to decode game %s: %w", id, err)
	}
	gs.ID = id
	return saved, gs, nil
}

func (m *Manager) save(ctx context.Context, gs *state.GameState, started, played time.Time) error {
	data, err := gs.Marshal()
	if err != nil {
		return err
	}
	saved := &storage.SavedGame{
		ID:         gs.ID,
		State:      data,
		Turns:      gs.Turns,
		Score:      m.engine.Score(gs),
		IsFinished: gs.IsFinished,
		StartedAt:  started,
		LastPlayed: played,
	}
	if err := m.storage.SaveGame(ctx, saved); err != nil {
		return fmt.Errorf("failed to save game %s: %w", gs.ID, err)
	}
	return nil
}

func (m *Manager) snapshot(gs *state.GameState) Snapshot {
	return Snapshot{
		ID:          gs.ID,
		Location:    m.engine.Location(gs),
		Description: m.engine.RoomDescription(gs),
		Objects:     m.engine.VisibleObjects(gs),
		Exits:       m.engine.Exits(gs),
		Inventory:   m.engine.Inventory(gs),
		Score:       m.engine.Score(gs),
		MaxScore:    engine.MaxScore,
		Turns:       gs.Turns,
		Deaths:      gs.Deaths,
		IsFinished:  gs.IsFinished,
	}
}
