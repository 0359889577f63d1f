package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const turnTimeout = 10 * time.Second

// playTurn sends one command through the session manager off the UI loop.
func (m ConsoleUI) playTurn(input string) tea.Cmd {
	games, id := m.games, m.gameID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		res, err := games.Process(ctx, id, input)
		return turnMsg{input: input, result: res, err: err}
	}
}

func (m ConsoleUI) resetGame() tea.Cmd {
	games, id := m.games, m.gameID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		defer cancel()

		res, err := games.Reset(ctx, id)
		return resetMsg{result: res, err: err}
	}
}
