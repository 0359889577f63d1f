package engine

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/loader"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// scriptedRand replays queued values. When a queue runs dry it returns
// values that never trigger a chance event: 0.5 for Float64 and n-1 for
// IntN.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return n - 1
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func loadWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := loader.LoadFile(filepath.Join("..", "loader", "testdata", "advent.dat"))
	require.NoError(t, err)
	return w
}

func newTestGame(t *testing.T) (*Engine, *state.GameState, *scriptedRand) {
	t.Helper()
	rng := &scriptedRand{}
	e := New(loadWorld(t)).
		WithRand(rng).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return e, e.NewGame(), rng
}

// carry puts objects straight into the player's hands.
func carry(gs *state.GameState, objs ...int) {
	for _, obj := range objs {
		gs.Place(obj, state.Carried)
	}
}

func snapshot(t *testing.T, gs *state.GameState) *state.GameState {
	t.Helper()
	data, err := gs.Marshal()
	require.NoError(t, err)
	out, err := state.Unmarshal(data)
	require.NoError(t, err)
	return out
}

func TestHandleCommand_Scenarios(t *testing.T) {
	t.Run("look shows the starting room", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		resp := e.HandleCommand(gs, "look")
		assert.Contains(t, resp, "You are standing at the end of a road before a small brick building.")
	})

	t.Run("inventory when empty handed", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		assert.Equal(t, "You're not carrying anything.", e.HandleCommand(gs, "inventory"))
	})

	t.Run("quit finishes the game", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		resp := e.HandleCommand(gs, "quit")
		assert.True(t, gs.IsFinished)
		assert.True(t, gs.GaveUp)
		assert.Regexp(t, `\d+ out of a possible 350\. Thanks for playing!$`, resp)
	})

	t.Run("take keys in the building", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		gs.CurrentRoom = world.BuildingRoom
		assert.Equal(t, "OK.", e.HandleCommand(gs, "take keys"))
		assert.True(t, gs.IsCarried(world.Keys))
	})

	t.Run("unrecognized command changes only the turn counter", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		before := snapshot(t, gs)

		resp := e.HandleCommand(gs, "xyzflurble")

		assert.Equal(t, "I don't understand that command.", resp)
		before.Turns++
		assert.Equal(t, before, snapshot(t, gs))
	})
}

func TestHandleCommand_TurnsAlwaysAdvance(t *testing.T) {
	e, gs, _ := newTestGame(t)
	inputs := []string{"", "look", "xyzflurble", "take", "east", "north", "quit", "look"}
	for i, in := range inputs {
		e.HandleCommand(gs, in)
		if gs.Turns != i+1 {
			t.Fatalf("after %q: turns = %d, want %d", in, gs.Turns, i+1)
		}
	}
}

func TestHandleCommand_EmptyInput(t *testing.T) {
	e, gs, _ := newTestGame(t)
	for _, in := range []string{"", "   ", "\t"} {
		if got := e.HandleCommand(gs, in); got != "I beg your pardon?" {
			t.Errorf("HandleCommand(%q) = %q", in, got)
		}
	}
}

func TestHandleCommand_FinishedGame(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.IsFinished = true
	resp := e.HandleCommand(gs, "east")
	assert.Contains(t, resp, "The game is over.")
	assert.Equal(t, world.StartRoom, gs.CurrentRoom)
}

func TestHandleCommand_LampExhaustion(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = 9
	carry(gs, world.Lamp)
	gs.Lamp.On = true
	gs.Lamp.Remaining = 1

	resp := e.HandleCommand(gs, "inventory")

	assert.Contains(t, resp, "Your lamp has run out of power.")
	assert.Contains(t, resp, "It is now pitch dark.")
	assert.NotContains(t, resp, "You are currently holding")
	assert.False(t, gs.Lamp.On)
	assert.Equal(t, 0, gs.PropValue(world.Lamp))
}

func TestHandleCommand_LampExhaustionInLitRoom(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = world.BuildingRoom
	carry(gs, world.Lamp)
	gs.Lamp.On = true
	gs.Lamp.Remaining = 1

	resp := e.HandleCommand(gs, "inventory")

	assert.Contains(t, resp, "Your lamp has run out of power.")
	assert.Contains(t, resp, "You are currently holding")
	assert.NotContains(t, resp, "pitch dark")
}

func TestHandleCommand_LampDims(t *testing.T) {
	t.Run("warns once", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		carry(gs, world.Lamp)
		gs.Lamp.On = true
		gs.Lamp.Remaining = lampDimAt + 1

		assert.Contains(t, e.HandleCommand(gs, "inventory"), "getting dim")
		assert.NotContains(t, e.HandleCommand(gs, "inventory"), "getting dim")
		assert.True(t, gs.Lamp.Warned)
	})

	t.Run("fresh batteries are used", func(t *testing.T) {
		e, gs, _ := newTestGame(t)
		carry(gs, world.Lamp, world.Batteries)
		gs.Lamp.On = true
		gs.Lamp.Remaining = lampDimAt + 1

		assert.Contains(t, e.HandleCommand(gs, "inventory"), "replacing the batteries")
		assert.Equal(t, lampDimAt+batteryLife, gs.Lamp.Remaining)
		assert.Equal(t, 1, gs.PropValue(world.Batteries))
	})
}

func TestHandleCommand_DarknessGatesTake(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = 9
	gs.Place(world.Keys, 9)

	for range 3 {
		if got := e.HandleCommand(gs, "take keys"); got != "It's too dark to see!" {
			t.Fatalf("take in the dark = %q", got)
		}
		if loc := gs.Location(world.Keys); loc != 9 {
			t.Fatalf("keys moved to %d", loc)
		}
	}
}

func TestHandleCommand_ImplicitTake(t *testing.T) {
	e, gs, _ := newTestGame(t)
	gs.CurrentRoom = world.BuildingRoom
	assert.Equal(t, "OK.", e.HandleCommand(gs, "lamp"))
	assert.True(t, gs.IsCarried(world.Lamp))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"LOOK", []string{"look"}},
		{"  take   Lantern ", []string{"take", "lante"}},
		{"go northeast now", []string{"go", "north", "now"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := tokenize(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJoinParagraphs(t *testing.T) {
	assert.Equal(t, "a\n\nb", joinParagraphs("", "a", "", "b"))
	assert.Equal(t, "", joinParagraphs("", ""))
}

func TestNewSeededRand_Deterministic(t *testing.T) {
	a, b := NewSeededRand(42), NewSeededRand(42)
	for range 20 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSeededRand_ZeroUsesClock(t *testing.T) {
	fixed := rand.New(rand.NewPCG(0, 0x9e3779b97f4a7c15))
	r := NewSeededRand(0)

	same := true
	for range 20 {
		if r.IntN(1<<30) != fixed.IntN(1<<30) {
			same = false
		}
	}
	assert.False(t, same, "a zero seed should not be used literally")
}
