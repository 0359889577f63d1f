package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/config"
	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/session"
	"github.com/jwebster45206/adventure-engine/internal/storage"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/loader"
)

// Logs go to a file; stdout belongs to the terminal UI.
const logFile = "adventure-console.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	log := logger.SetupWriter(cfg, f)

	w, err := loader.LoadFile(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", cfg.DataFile, err)
	}

	eng := engine.New(w).WithRand(engine.NewSeededRand(cfg.Seed)).WithLogger(log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	var id uuid.UUID
	if cfg.GameID != "" {
		if id, err = uuid.Parse(cfg.GameID); err != nil {
			return fmt.Errorf("invalid ADVENTURE_GAME_ID %q: %w", cfg.GameID, err)
		}
	}

	games := session.NewManager(eng, store, log)
	start, created, err := games.LoadOrCreate(ctx, id)
	if err != nil {
		return err
	}
	logger.WithGame(log, start.Snapshot.ID).Info("Console session started", "created", created)

	p := tea.NewProgram(NewConsoleUI(games, start),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	fmt.Printf("Game %s saved.\n", start.Snapshot.ID)
	return nil
}
