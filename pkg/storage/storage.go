package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SavedGame is the persisted form of one game. State is the opaque
// serialized game state; the other fields summarize it so listings and
// housekeeping never have to decode the blob.
type SavedGame struct {
	ID         uuid.UUID `json:"id"`
	State      []byte    `json:"state"`
	Turns      int       `json:"turns"`
	Score      int       `json:"score"`
	IsFinished bool      `json:"is_finished"`
	StartedAt  time.Time `json:"started_at"`
	LastPlayed time.Time `json:"last_played"`
}

// Storage persists saved games.
// LoadGame returns (nil, nil) when no game exists under the ID.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	SaveGame(ctx context.Context, game *SavedGame) error
	LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error
}
