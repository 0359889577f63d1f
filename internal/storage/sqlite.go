package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

const createSavedGames = `
CREATE TABLE IF NOT EXISTS saved_games (
	id          TEXT PRIMARY KEY,
	state       BLOB NOT NULL,
	turns       INTEGER NOT NULL DEFAULT 0,
	score       INTEGER NOT NULL DEFAULT 0,
	is_finished INTEGER NOT NULL DEFAULT 0,
	started_at  INTEGER NOT NULL,
	last_played INTEGER NOT NULL
);`

const upsertSavedGame = `
INSERT INTO saved_games (id, state, turns, score, is_finished, started_at, last_played)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	state = excluded.state,
	turns = excluded.turns,
	score = excluded.score,
	is_finished = excluded.is_finished,
	last_played = excluded.last_played`

// SQLiteStorage keeps saved games in a single saved_games table.
// Timestamps are stored as Unix nanoseconds.
type SQLiteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure SQLiteStorage implements Storage interface
var _ storage.Storage = (*SQLiteStorage)(nil)

// NewSQLiteStorage opens (creating if needed) the database at path.
func NewSQLiteStorage(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createSavedGames); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create saved_games table: %w", err)
	}

	logger.Info("SQLite storage ready", "path", path)
	return &SQLiteStorage{db: db, logger: logger}, nil
}

func (s *SQLiteStorage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close SQLite database", "error", err)
		return err
	}
	return nil
}

func (s *SQLiteStorage) SaveGame(ctx context.Context, game *storage.SavedGame) error {
	if game == nil {
		return errors.New("saved game cannot be nil")
	}

	_, err := s.db.ExecContext(ctx, upsertSavedGame,
		game.ID.String(),
		game.State,
		game.Turns,
		game.Score,
		game.IsFinished,
		game.StartedAt.UnixNano(),
		game.LastPlayed.UnixNano(),
	)
	if err != nil {
		s.logger.Error("Failed to save game", "game_id", game.ID, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) LoadGame(ctx context.Context, id uuid.UUID) (*storage.SavedGame, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT state, turns, score, is_finished, started_at, last_played FROM saved_games WHERE id = ?`,
		id.String())

	game := storage.SavedGame{ID: id}
	var started, played int64
	err := row.Scan(&game.State, &game.Turns, &game.Score, &game.IsFinished, &started, &played)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("Saved game not found", "game_id", id)
			return nil, nil
		}
		s.logger.Error("Failed to load game", "game_id", id, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	game.StartedAt = time.Unix(0, started).UTC()
	game.LastPlayed = time.Unix(0, played).UTC()

	return &game, nil
}

func (s *SQLiteStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_games WHERE id = ?`, id.String()); err != nil {
		s.logger.Error("Failed to delete game", "game_id", id, "error", err)
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
