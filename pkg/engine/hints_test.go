package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHints_OfferAfterLingering(t *testing.T) {
	e, gs, _ := newTestGame(t)

	for i := range 3 {
		if resp := e.HandleCommand(gs, "look"); strings.Contains(resp, "Say HINT") {
			t.Fatalf("hint offered early on turn %d", i+1)
		}
	}

	resp := e.HandleCommand(gs, "look")
	assert.Contains(t, resp, "Are you trying to get into the cave?")
	assert.Contains(t, resp, "It will cost you 2 points.")
	assert.True(t, gs.Hints.Offered[4])

	assert.NotContains(t, e.HandleCommand(gs, "look"), "Say HINT", "a hint is offered once")
}

func TestHints_TakeHint(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.Hints.Offered[4] = true

	resp := e.HandleCommand(gs, "hint")

	assert.Contains(t, resp, "hardened steel lock")
	assert.True(t, gs.Hints.Given[4])
	assert.False(t, gs.Hints.Offered[4])
	assert.Equal(t, 34, e.Score(gs))

	assert.Equal(t, "I have no hints for you right now.", e.HandleCommand(gs, "hint"))
}

func TestHints_OnlyInTheirRooms(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.Hints.Offered[4] = true
	gs.CurrentRoom = 3

	assert.Equal(t, "I have no hints for you right now.", e.HandleCommand(gs, "hint"))
	assert.False(t, gs.Hints.Given[4])
}

func TestHints_UnrecognizedCommandsDoNotCount(t *testing.T) {
	e, gs, _ := newTestGame(t)
	for range 6 {
		e.HandleCommand(gs, "xyzflurble")
	}
	assert.Zero(t, gs.Hints.Turns[4])
	assert.False(t, gs.Hints.Offered[4])
}
