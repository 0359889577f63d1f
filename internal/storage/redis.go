package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

const savedGamePrefix = "savedgame:"

// RedisStorage keeps saved games as JSON values under savedgame:<id>.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage connects lazily; call Ping or WaitForConnection to check it.
// A zero ttl stores games without expiry.
func NewRedisStorage(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	return &RedisStorage{
		client: redis.NewClient(opt),
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	return r.waitForConnection(ctx, 30, 2*time.Second)
}

func (r *RedisStorage) waitForConnection(ctx context.Context, maxRetries int, retryDelay time.Duration) error {
	for i := range maxRetries {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveGame(ctx context.Context, game *storage.SavedGame) error {
	if game == nil {
		return errors.New("saved game cannot be nil")
	}

	data, err := json.Marshal(game)
	if err != nil {
		r.logger.Error("Failed to marshal saved game", "game_id", game.ID, "error", err)
		return fmt.Errorf("failed to marshal saved game: %w", err)
	}

	if err := r.client.Set(ctx, savedGamePrefix+game.ID.String(), data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save game", "game_id", game.ID, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (r *RedisStorage) LoadGame(ctx context.Context, id uuid.UUID) (*storage.SavedGame, error) {
	data, err := r.client.Get(ctx, savedGamePrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Warn("Saved game not found", "game_id", id)
			return nil, nil
		}
		r.logger.Error("Failed to load game", "game_id", id, "error", err)
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	var game storage.SavedGame
	if err := json.Unmarshal(data, &game); err != nil {
		r.logger.Error("Failed to unmarshal saved game", "game_id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal saved game: %w", err)
	}

	return &game, nil
}

func (r *RedisStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, savedGamePrefix+id.String()).Err(); err != nil {
		r.logger.Error("Failed to delete game", "game_id", id, "error", err)
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
