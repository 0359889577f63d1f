package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// New builds the backend named by cfg.Storage. Redis connections are
// checked with WaitForConnection before returning.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.Storage {
	case config.StorageMemory, "":
		logger.Info("Using in-memory storage; games are lost on exit")
		return storage.NewMockStorage(), nil
	case config.StorageRedis:
		r, err := NewRedisStorage(cfg.RedisURL, cfg.SaveTTL, logger)
		if err != nil {
			return nil, err
		}
		if err := r.WaitForConnection(ctx); err != nil {
			_ = r.Close()
			return nil, err
		}
		return r, nil
	case config.StorageSQLite:
		return NewSQLiteStorage(ctx, cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
